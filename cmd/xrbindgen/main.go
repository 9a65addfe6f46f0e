// Package main provides the xrbindgen CLI for generating OpenXR
// interaction profile binding sources.
package main

func main() {
	Execute()
}
