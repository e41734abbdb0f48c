package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// RandomOTP generates a 6-digit one-time passcode with leading zeros kept.
func RandomOTP() string {
	var num uint32
	err := binary.Read(rand.Reader, binary.BigEndian, &num)
	if err != nil {
		panic("generate random otp failed")
	}
	return fmt.Sprintf("%06d", num%1000000)
}
