package bit

import "testing"

func TestCombine(t *testing.T) {
	tests := []struct {
		high, low uint8
		expected  uint16
	}{
		{0xAB, 0xCD, 0xABCD},
		{0x00, 0x00, 0x0000},
		{0xFF, 0xFF, 0xFFFF},
		{0x12, 0x34, 0x1234},
	}

	for _, tt := range tests {
		result := Combine(tt.high, tt.low)
		if result != tt.expected {
			t.Errorf("Combine(%X, %X) = %X; want %X", tt.high, tt.low, result, tt.expected)
		}
	}
}

func TestIsSet(t *testing.T) {
	tests := []struct {
		value    uint8
		index    uint8
		expected bool
	}{
		{0b10101010, 0, false},
		{0b10101010, 1, true},
		{0b10101010, 2, false},
		{0b10101010, 7, true},
	}

	for _, tt := range tests {
		result := IsSet(tt.index, tt.value)
		if result != tt.expected {
			t.Errorf("IsSet(%d, %08b) = %v; want %v", tt.index, tt.value, result, tt.expected)
		}
	}
}

func TestIsSet16(t *testing.T) {
	if !IsSet16(12, 0x1000) {
		t.Errorf("IsSet16(12, 0x1000) = false; want true")
	}
	if IsSet16(12, 0x0FFF) {
		t.Errorf("IsSet16(12, 0x0FFF) = true; want false")
	}
}

func TestSetReset(t *testing.T) {
	v := Set(0, 0b10101010)
	if v != 0b10101011 {
		t.Errorf("Set(0, ...) = %08b; want %08b", v, 0b10101011)
	}
	v = Reset(7, 0b10101011)
	if v != 0b00101011 {
		t.Errorf("Reset(7, ...) = %08b; want %08b", v, 0b00101011)
	}
}

func TestSetTo(t *testing.T) {
	if SetTo(3, 0x00, true) != 0x08 {
		t.Errorf("SetTo(3, 0, true) did not set bit 3")
	}
	if SetTo(3, 0xFF, false) != 0xF7 {
		t.Errorf("SetTo(3, 0xFF, false) did not clear bit 3")
	}
}

func TestGetBitValue(t *testing.T) {
	if GetBitValue(1, 0b10101010) != 1 {
		t.Errorf("GetBitValue(1, ...) != 1")
	}
	if GetBitValue(0, 0b10101010) != 0 {
		t.Errorf("GetBitValue(0, ...) != 0")
	}
}

func TestLowHigh(t *testing.T) {
	if Low(0xABCD) != 0xCD {
		t.Errorf("Low(0xABCD) != 0xCD")
	}
	if High(0xABCD) != 0xAB {
		t.Errorf("High(0xABCD) != 0xAB")
	}
}

func TestExtractBits(t *testing.T) {
	if got := ExtractBits(0b11010110, 6, 4); got != 0b101 {
		t.Errorf("ExtractBits(0b11010110, 6, 4) = %03b; want %03b", got, 0b101)
	}
	if got := ExtractBits(0xFF, 2, 0); got != 0b111 {
		t.Errorf("ExtractBits(0xFF, 2, 0) = %03b; want %03b", got, 0b111)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(10, 0, 5) != 5 {
		t.Errorf("Clamp(10, 0, 5) != 5")
	}
	if Clamp(-1, 0, 5) != 0 {
		t.Errorf("Clamp(-1, 0, 5) != 0")
	}
	if Clamp(3, 0, 5) != 3 {
		t.Errorf("Clamp(3, 0, 5) != 3")
	}
}
