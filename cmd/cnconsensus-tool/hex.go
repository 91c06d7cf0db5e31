package main

import "encoding/hex"

func parseHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
