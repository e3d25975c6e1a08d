package cpu

import "testing"

func TestCPU_getAF_setAF(t *testing.T) {
	c := &CPU{}
	c.setAF(0xABCD)

	if c.a != 0xAB {
		t.Errorf("a = 0x%02X, want 0xAB", c.a)
	}
	// the low nibble of F is always forced to zero
	if c.f != 0xC0 {
		t.Errorf("f = 0x%02X, want 0xC0", c.f)
	}
	if got := c.getAF(); got != 0xABC0 {
		t.Errorf("getAF() = 0x%04X, want 0xABC0", got)
	}
}

func TestCPU_getBC_setBC(t *testing.T) {
	c := &CPU{}
	c.setBC(0xBEEF)

	if c.b != 0xBE || c.c != 0xEF {
		t.Errorf("b,c = 0x%02X,0x%02X, want 0xBE,0xEF", c.b, c.c)
	}
	if got := c.getBC(); got != 0xBEEF {
		t.Errorf("getBC() = 0x%04X, want 0xBEEF", got)
	}
}

func TestCPU_getDE_setDE(t *testing.T) {
	c := &CPU{}
	c.setDE(0xCAFE)

	if c.d != 0xCA || c.e != 0xFE {
		t.Errorf("d,e = 0x%02X,0x%02X, want 0xCA,0xFE", c.d, c.e)
	}
	if got := c.getDE(); got != 0xCAFE {
		t.Errorf("getDE() = 0x%04X, want 0xCAFE", got)
	}
}

func TestCPU_getHL_setHL(t *testing.T) {
	c := &CPU{}
	c.setHL(0x1234)

	if c.h != 0x12 || c.l != 0x34 {
		t.Errorf("h,l = 0x%02X,0x%02X, want 0x12,0x34", c.h, c.l)
	}
	if got := c.getHL(); got != 0x1234 {
		t.Errorf("getHL() = 0x%04X, want 0x1234", got)
	}

	c.setHL(c.getHL() + 1)
	if got := c.getHL(); got != 0x1235 {
		t.Errorf("getHL() after increment = 0x%04X, want 0x1235", got)
	}

	c.setHL(0x0000)
	c.setHL(c.getHL() - 1)
	if got := c.getHL(); got != 0xFFFF {
		t.Errorf("getHL() after wraparound decrement = 0x%04X, want 0xFFFF", got)
	}
}

func TestCPU_setAF_masksFlagNibble(t *testing.T) {
	c := &CPU{}
	c.setAF(0x0F0F)

	if c.f != 0x00 {
		t.Errorf("f = 0x%02X, want 0x00 (low nibble must never be settable)", c.f)
	}
}
