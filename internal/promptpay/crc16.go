package promptpay

import "fmt"

// CRC16/CCITT-FALSE parameters.
const (
	crcPoly uint16 = 0x1021
	crcInit uint16 = 0xFFFF
)

// checksum computes CRC16/CCITT-FALSE over s byte by byte, MSB first, and
// renders it as 4 uppercase hex digits.
func checksum(s string) string {
	crc := crcInit

	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8

		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ crcPoly
			} else {
				crc <<= 1
			}
		}
	}

	return fmt.Sprintf("%04X", crc)
}
