// Copyright 2025 Mockd LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package random

import (
	"fmt"
	"strings"
)

// =============================================================================
// Data — Names
// =============================================================================

var firstNames = []string{
	"James", "John", "Robert", "Michael", "William", "David", "Richard",
	"Charles", "Joseph", "Thomas", "Christopher", "Daniel", "Paul", "Mark",
	"Donald", "George", "Kenneth", "Steven", "Edward", "Brian", "Ronald",
	"Anthony", "Kevin", "Jason", "Matthew", "Gary", "Timothy", "Jose",
	"Larry", "Jeffrey", "Frank", "Scott", "Eric",
	"Mary", "Patricia", "Linda", "Barbara", "Elizabeth", "Jennifer", "Maria",
	"Susan", "Margaret", "Dorothy", "Lisa", "Nancy", "Karen", "Betty",
	"Helen", "Sandra", "Donna", "Carol", "Ruth", "Sharon", "Michelle",
	"Laura", "Sarah", "Kimberly", "Deborah", "Jessica", "Shirley",
	"Cynthia", "Angela", "Melissa", "Brenda", "Amy", "Anna",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis",
	"Garcia", "Rodriguez", "Wilson", "Martinez", "Anderson", "Taylor",
	"Thomas", "Hernandez", "Moore", "Martin", "Jackson", "Thompson",
	"White", "Lopez", "Lee", "Gonzalez", "Harris", "Clark", "Lewis",
	"Robinson", "Walker", "Perez", "Hall", "Young", "Allen",
}

var chineseFamilyNames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
	"梁", "宋", "郑", "谢", "韩", "唐", "冯", "于", "董", "萧",
}

var chineseGivenNames = []string{
	"伟", "芳", "娜", "秀英", "敏", "静", "丽", "强", "磊", "军",
	"洋", "勇", "艳", "杰", "娟", "涛", "明", "超", "秀兰", "霞",
	"平", "刚", "桂英",
}

// hanzi is the default pool for Chinese words.
const hanzi = "的一是在不了有和人这中大为上个国我以要他时来用们生到作地于出就分对成会可主发年动同工也能下过子说产种面而方后多定行学法所民得经十三之进着等部度家电力里如水化高自二理起小物现实加量都两体制机当使点从业本去把性好应开它合还因由其些然前外天政四日那社义事平形相全表间样与关各重新线内数正心反你明看原又么利比或但质气第向道命此变条只没结解问意建月公无系军很情者最立代想已通并提直题党程展五果料象员革位入常文总次品式活设及管特件长求老头基资边流路级少图山统接知较将组见计别她手角期根论运农指几九区强放决西被干做必战先回则任取据处队南给色光门即保治北造百规热领七海口东导器压志世金增争济阶油思术极交受联什认六共权收证改清己美再采转更单风切打白教速花带安场身车例真务具万每目至达走积示议声报斗完类八离华名确才科张信马节话米整空元况今集温传土许步群广石记需段研界拉林律叫且究观越织装影算低持音众书布复容儿须际商非验连断深难近矿千周委素技备半办青省列习响约支般史感劳便团往酸历市克何除消构府称太准精值号率族维划选标写存候毛亲快效斯院查江型眼王按格养易置派层片始却专状育厂京识适属圆包火住调满县局照参红细引听该铁价严"

// =============================================================================
// Data — Text
// =============================================================================

// syllables build pronounceable lower-case words.
var syllables = []string{
	"lo", "rem", "ip", "sum", "do", "lor", "sit", "am", "et", "con",
	"sec", "te", "tur", "ad", "pis", "cing", "el", "it", "sed", "eius",
	"mod", "tem", "por", "in", "ci", "dunt", "ut", "la", "bo", "re",
	"ma", "gna", "ali", "qua", "en", "im", "ve", "ni", "qui", "nos",
}

// =============================================================================
// Data — Internet
// =============================================================================

var protocols = []string{
	"http", "ftp", "gopher", "mailto", "mid", "cid", "news", "nntp",
	"prospero", "telnet", "rlogin", "tn3270", "wais",
}

var topLevelDomains = []string{
	"com", "net", "org", "edu", "gov", "int", "mil", "cn", "io", "dev",
	"co", "uk", "de", "jp", "fr", "au", "ca", "nl", "se", "ch",
}

// userAgents contains realistic browser user agent strings.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1",
}

// adSizes are the placeholder image sizes used by @image.
var adSizes = []string{
	"300x250", "250x250", "240x400", "336x280", "180x150", "720x300",
	"468x60", "234x60", "88x31", "120x90", "120x60", "120x240",
	"125x125", "728x90", "160x600", "120x600", "300x600",
}

// =============================================================================
// Data — Address
// =============================================================================

var regions = []string{"东北", "华北", "华东", "华中", "华南", "西南", "西北"}

type county struct {
	code string
	name string
}

type city struct {
	name     string
	counties []county
}

type province struct {
	name   string
	cities []city
}

var provinces = []province{
	{"北京市", []city{
		{"北京市", []county{{"110101", "东城区"}, {"110102", "西城区"}, {"110105", "朝阳区"}, {"110108", "海淀区"}}},
	}},
	{"上海市", []city{
		{"上海市", []county{{"310101", "黄浦区"}, {"310104", "徐汇区"}, {"310115", "浦东新区"}}},
	}},
	{"广东省", []city{
		{"广州市", []county{{"440103", "荔湾区"}, {"440104", "越秀区"}, {"440106", "天河区"}}},
		{"深圳市", []county{{"440303", "罗湖区"}, {"440304", "福田区"}, {"440305", "南山区"}}},
	}},
	{"浙江省", []city{
		{"杭州市", []county{{"330102", "上城区"}, {"330106", "西湖区"}, {"330108", "滨江区"}}},
		{"宁波市", []county{{"330203", "海曙区"}, {"330212", "鄞州区"}}},
	}},
	{"四川省", []city{
		{"成都市", []county{{"510104", "锦江区"}, {"510105", "青羊区"}, {"510107", "武侯区"}}},
		{"绵阳市", []county{{"510703", "涪城区"}, {"510704", "游仙区"}}},
	}},
	{"黑龙江省", []city{
		{"哈尔滨市", []county{{"230102", "道里区"}, {"230103", "南岗区"}}},
	}},
}

var streetNames = []string{
	"Main St", "Oak Ave", "Elm St", "Park Blvd", "Cedar Ln", "Maple Dr", "Pine Rd", "Lake Way",
}

var usCities = []struct{ city, state string }{
	{"New York", "NY"}, {"Los Angeles", "CA"}, {"Chicago", "IL"}, {"Houston", "TX"},
	{"Phoenix", "AZ"}, {"Seattle", "WA"}, {"Denver", "CO"}, {"Boston", "MA"},
}

// =============================================================================
// Data — Color
// =============================================================================

var namedColors = map[string]string{
	"navy": "#001f3f", "blue": "#0074d9", "aqua": "#7fdbff", "teal": "#39cccc",
	"olive": "#3d9970", "green": "#2ecc40", "lime": "#01ff70", "yellow": "#ffdc00",
	"orange": "#ff851b", "red": "#ff4136", "maroon": "#85144b", "fuchsia": "#f012be",
	"purple": "#b10dc9", "silver": "#dddddd", "gray": "#aaaaaa", "black": "#111111",
	"white": "#ffffff",
}

// colorNames contains display color names.
var colorNames = []string{
	"Crimson", "Azure", "Emerald", "Ivory", "Coral",
	"Indigo", "Amber", "Jade", "Scarlet", "Turquoise",
	"Lavender", "Maroon", "Teal", "Orchid", "Cyan",
	"Magenta", "Gold", "Silver", "Pearl", "Sapphire",
}

// =============================================================================
// Data — Commerce and identity
// =============================================================================

var companies = []string{
	"Acme Corp", "Globex Inc", "Initech", "Umbrella Corp", "Stark Industries",
	"Wayne Enterprises", "Cyberdyne Systems", "Tyrell Corp",
}

// currencyCodes contains ISO 4217 currency codes.
var currencyCodes = []string{
	"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY",
	"SEK", "NZD", "MXN", "SGD", "HKD", "NOK", "KRW", "TRY",
	"INR", "RUB", "BRL", "ZAR",
}

// ibanPrefix defines country code, total IBAN length, and a sample bank code.
type ibanPrefix struct {
	country    string
	length     int
	bankPrefix string
}

var ibanPrefixes = []ibanPrefix{
	{"GB", 22, "WEST"},
	{"DE", 22, "DEUT"},
	{"FR", 27, "BNPA"},
	{"ES", 24, "BBVA"},
	{"IT", 27, "UCRI"},
	{"NL", 18, "ABNA"},
}

var productAdjectives = []string{
	"Rustic", "Elegant", "Handcrafted", "Refined", "Sleek",
	"Gorgeous", "Practical", "Modern", "Vintage", "Premium",
	"Luxurious", "Compact", "Ergonomic", "Lightweight", "Durable",
}

var productMaterials = []string{
	"Steel", "Wooden", "Granite", "Rubber", "Cotton",
	"Silk", "Leather", "Bamboo", "Bronze", "Copper",
	"Ceramic", "Plastic", "Glass", "Marble", "Titanium",
}

var productNouns = []string{
	"Chair", "Table", "Lamp", "Keyboard", "Mouse",
	"Backpack", "Watch", "Wallet", "Headphones", "Speaker",
	"Notebook", "Pen", "Mug", "Bottle", "Gloves",
}

var jobLevels = []string{"Senior", "Junior", "Lead", "Principal", "Staff"}

var jobFields = []string{
	"Software", "Data", "Product", "Marketing", "Sales",
	"Operations", "Security", "Infrastructure", "Quality", "Research",
}

var jobRoles = []string{
	"Engineer", "Analyst", "Manager", "Designer", "Architect",
	"Consultant", "Developer", "Specialist", "Coordinator", "Strategist",
}

var mimeTypes = []string{
	"application/json", "application/xml", "application/pdf",
	"application/zip", "application/gzip", "application/octet-stream",
	"text/html", "text/plain", "text/css", "text/csv",
	"image/png", "image/jpeg", "image/gif", "image/svg+xml", "image/webp",
	"audio/mpeg", "audio/wav", "video/mp4", "video/webm",
	"multipart/form-data",
}

// fileExtensions are listed without the leading dot.
var fileExtensions = []string{
	"pdf", "jpg", "png", "gif", "doc", "docx",
	"xls", "xlsx", "csv", "txt", "html", "css",
	"js", "json", "xml", "zip", "tar", "gz",
	"mp3", "mp4", "wav", "svg", "md", "yaml", "toml", "log",
}

// =============================================================================
// Composite generators
// =============================================================================

// ipv6 renders eight random groups in full notation.
func (r *Random) ipv6() string {
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = fmt.Sprintf("%04x", r.intN(65536))
	}
	return strings.Join(groups, ":")
}

// mac renders a MAC address in upper-case hex.
func (r *Random) mac() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		r.intN(256), r.intN(256), r.intN(256),
		r.intN(256), r.intN(256), r.intN(256))
}

// creditCard generates a Luhn-valid 16-digit number with a Visa-like prefix.
func (r *Random) creditCard() string {
	digits := make([]int, 16)
	digits[0] = 4
	for i := 1; i < 15; i++ {
		digits[i] = r.intN(10)
	}
	digits[15] = luhnCheckDigit(digits[:15])

	var sb strings.Builder
	for _, d := range digits {
		sb.WriteByte(byte('0' + d))
	}
	return sb.String()
}

// luhnCheckDigit computes the digit that makes payload+digit Luhn-valid.
func luhnCheckDigit(payload []int) int {
	sum := 0
	double := true
	for i := len(payload) - 1; i >= 0; i-- {
		d := payload[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}

// iban generates a simplified IBAN with a realistic structure.
func (r *Random) iban() string {
	prefix := ibanPrefixes[r.intN(len(ibanPrefixes))]
	var sb strings.Builder
	sb.WriteString(prefix.country)
	fmt.Fprintf(&sb, "%02d", r.intN(90)+10)
	sb.WriteString(prefix.bankPrefix)
	remaining := prefix.length - len(prefix.country) - 2 - len(prefix.bankPrefix)
	for i := 0; i < remaining; i++ {
		sb.WriteByte(byte('0' + r.intN(10)))
	}
	return sb.String()
}

// price renders an amount with two decimal places.
func (r *Random) price() string {
	return fmt.Sprintf("%d.%02d", r.intN(999)+1, r.intN(100))
}

// ssn renders ###-##-####.
func (r *Random) ssn() string {
	return fmt.Sprintf("%03d-%02d-%04d", r.intN(899)+100, r.intN(99)+1, r.intN(9999)+1)
}

// passport renders two upper-case letters and seven digits.
func (r *Random) passport() string {
	var sb strings.Builder
	sb.WriteByte(byte('A' + r.intN(26)))
	sb.WriteByte(byte('A' + r.intN(26)))
	for i := 0; i < 7; i++ {
		sb.WriteByte(byte('0' + r.intN(10)))
	}
	return sb.String()
}

func (r *Random) phone() string {
	return fmt.Sprintf("+1-%03d-%03d-%04d", r.intN(900)+100, r.intN(900)+100, r.intN(10000))
}

func (r *Random) product() string {
	return pickString(r, productAdjectives) + " " +
		pickString(r, productMaterials) + " " +
		pickString(r, productNouns)
}

func (r *Random) job() string {
	return pickString(r, jobLevels) + " " +
		pickString(r, jobFields) + " " +
		pickString(r, jobRoles)
}

func (r *Random) streetAddress() string {
	c := usCities[r.intN(len(usCities))]
	return fmt.Sprintf("%d %s, %s, %s %05d",
		r.intN(9999)+1, pickString(r, streetNames), c.city, c.state, r.intN(99999))
}
