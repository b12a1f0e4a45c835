package mssql

import (
	"encoding/binary"
)

// rowversionHex кодирует ROWVERSION (8 байт, big-endian) в hex без ведущих нулей,
// так же как его показывает SQL Server Management Studio без префикса 0x.
// Нулевое значение дает "00", пустой срез - пустую строку.
// Срезы другой длины кодируются полностью.
func rowversionHex(data []byte) string {
	const hexChars = "0123456789ABCDEF"

	if len(data) != 8 {
		out := make([]byte, len(data)*2)
		for i, b := range data {
			out[i*2] = hexChars[b>>4]
			out[i*2+1] = hexChars[b&0x0F]
		}
		return string(out)
	}

	value := binary.BigEndian.Uint64(data)
	if value == 0 {
		return "00"
	}

	// справа налево, без аллокаций кроме итоговой строки
	var result [16]byte
	pos := len(result)
	for value > 0 {
		pos--
		result[pos] = hexChars[value&0x0F]
		value >>= 4
	}

	return string(result[pos:])
}
