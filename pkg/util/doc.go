// Package util provides small helpers shared across mockdata packages.
package util
