package cpu

// NOP
func opcode0x00(_ *CPU) int { return 4 }

// LD BC, nn
func opcode0x01(cpu *CPU) int {
	cpu.setBC(cpu.readImmediateWord())
	return 12
}

// LD (BC), A
func opcode0x02(cpu *CPU) int {
	cpu.bus.Write(cpu.getBC(), cpu.a)
	return 8
}

// INC BC
func opcode0x03(cpu *CPU) int {
	cpu.setBC(cpu.getBC() + 1)
	return 8
}

// INC B
func opcode0x04(cpu *CPU) int { cpu.inc(&cpu.b); return 4 }

// DEC B
func opcode0x05(cpu *CPU) int { cpu.dec(&cpu.b); return 4 }

// LD B, n
func opcode0x06(cpu *CPU) int {
	cpu.b = cpu.readImmediate()
	return 8
}

// RLCA
func opcode0x07(cpu *CPU) int { cpu.rlc(&cpu.a); return 4 }

// LD (nn), SP
func opcode0x08(cpu *CPU) int {
	address := cpu.readImmediateWord()
	cpu.bus.Write(address, uint8(cpu.sp))
	cpu.bus.Write(address+1, uint8(cpu.sp>>8))
	return 20
}

// ADD HL, BC
func opcode0x09(cpu *CPU) int { cpu.addToHL(cpu.getBC()); return 8 }

// LD A, (BC)
func opcode0x0A(cpu *CPU) int {
	cpu.a = cpu.bus.Read(cpu.getBC())
	return 8
}

// DEC BC
func opcode0x0B(cpu *CPU) int {
	cpu.setBC(cpu.getBC() - 1)
	return 8
}

// INC C
func opcode0x0C(cpu *CPU) int { cpu.inc(&cpu.c); return 4 }

// DEC C
func opcode0x0D(cpu *CPU) int { cpu.dec(&cpu.c); return 4 }

// LD C, n
func opcode0x0E(cpu *CPU) int {
	cpu.c = cpu.readImmediate()
	return 8
}

// RRCA
func opcode0x0F(cpu *CPU) int { cpu.rrc(&cpu.a); return 4 }

// STOP
func opcode0x10(cpu *CPU) int {
	cpu.stopped = true
	return cpu.fail(ErrStopped)
}

// LD DE, nn
func opcode0x11(cpu *CPU) int {
	cpu.setDE(cpu.readImmediateWord())
	return 12
}

// LD (DE), A
func opcode0x12(cpu *CPU) int {
	cpu.bus.Write(cpu.getDE(), cpu.a)
	return 8
}

// INC DE
func opcode0x13(cpu *CPU) int {
	cpu.setDE(cpu.getDE() + 1)
	return 8
}

// INC D
func opcode0x14(cpu *CPU) int { cpu.inc(&cpu.d); return 4 }

// DEC D
func opcode0x15(cpu *CPU) int { cpu.dec(&cpu.d); return 4 }

// LD D, n
func opcode0x16(cpu *CPU) int {
	cpu.d = cpu.readImmediate()
	return 8
}

// RLA
func opcode0x17(cpu *CPU) int { cpu.rl(&cpu.a); return 4 }

// JR n
func opcode0x18(cpu *CPU) int { cpu.jr(); return 12 }

// ADD HL, DE
func opcode0x19(cpu *CPU) int { cpu.addToHL(cpu.getDE()); return 8 }

// LD A, (DE)
func opcode0x1A(cpu *CPU) int {
	cpu.a = cpu.bus.Read(cpu.getDE())
	return 8
}

// DEC DE
func opcode0x1B(cpu *CPU) int {
	cpu.setDE(cpu.getDE() - 1)
	return 8
}

// INC E
func opcode0x1C(cpu *CPU) int { cpu.inc(&cpu.e); return 4 }

// DEC E
func opcode0x1D(cpu *CPU) int { cpu.dec(&cpu.e); return 4 }

// LD E, n
func opcode0x1E(cpu *CPU) int {
	cpu.e = cpu.readImmediate()
	return 8
}

// RRA
func opcode0x1F(cpu *CPU) int { cpu.rr(&cpu.a); return 4 }

// JR NZ, n
func opcode0x20(cpu *CPU) int {
	if !cpu.isSetFlag(zeroFlag) {
		cpu.jr()
		return 12
	}
	cpu.pc++
	return 8
}

// LD HL, nn
func opcode0x21(cpu *CPU) int {
	cpu.setHL(cpu.readImmediateWord())
	return 12
}

// LDI (HL), A
func opcode0x22(cpu *CPU) int {
	cpu.bus.Write(cpu.getHL(), cpu.a)
	cpu.setHL(cpu.getHL() + 1)
	return 8
}

// INC HL
func opcode0x23(cpu *CPU) int {
	cpu.setHL(cpu.getHL() + 1)
	return 8
}

// INC H
func opcode0x24(cpu *CPU) int { cpu.inc(&cpu.h); return 4 }

// DEC H
func opcode0x25(cpu *CPU) int { cpu.dec(&cpu.h); return 4 }

// LD H, n
func opcode0x26(cpu *CPU) int {
	cpu.h = cpu.readImmediate()
	return 8
}

// DAA
func opcode0x27(cpu *CPU) int { cpu.daa(); return 4 }

// JR Z, n
func opcode0x28(cpu *CPU) int {
	if cpu.isSetFlag(zeroFlag) {
		cpu.jr()
		return 12
	}
	cpu.pc++
	return 8
}

// ADD HL, HL
func opcode0x29(cpu *CPU) int { cpu.addToHL(cpu.getHL()); return 8 }

// LDI A, (HL)
func opcode0x2A(cpu *CPU) int {
	cpu.a = cpu.bus.Read(cpu.getHL())
	cpu.setHL(cpu.getHL() + 1)
	return 8
}

// DEC HL
func opcode0x2B(cpu *CPU) int {
	cpu.setHL(cpu.getHL() - 1)
	return 8
}

// INC L
func opcode0x2C(cpu *CPU) int { cpu.inc(&cpu.l); return 4 }

// DEC L
func opcode0x2D(cpu *CPU) int { cpu.dec(&cpu.l); return 4 }

// LD L, n
func opcode0x2E(cpu *CPU) int {
	cpu.l = cpu.readImmediate()
	return 8
}

// CPL
func opcode0x2F(cpu *CPU) int {
	cpu.a = ^cpu.a
	cpu.setFlag(subFlag)
	cpu.setFlag(halfCarryFlag)
	return 4
}

// JR NC, n
func opcode0x30(cpu *CPU) int {
	if !cpu.isSetFlag(carryFlag) {
		cpu.jr()
		return 12
	}
	cpu.pc++
	return 8
}

// LD SP, nn
func opcode0x31(cpu *CPU) int {
	cpu.sp = cpu.readImmediateWord()
	return 12
}

// LDD (HL), A
func opcode0x32(cpu *CPU) int {
	cpu.bus.Write(cpu.getHL(), cpu.a)
	cpu.setHL(cpu.getHL() - 1)
	return 8
}

// INC SP
func opcode0x33(cpu *CPU) int { cpu.sp++; return 8 }

// INC (HL)
func opcode0x34(cpu *CPU) int {
	address := cpu.getHL()
	value := cpu.bus.Read(address)
	value++
	cpu.bus.Write(address, value)

	cpu.setFlagToCondition(zeroFlag, value == 0)
	cpu.setFlagToCondition(halfCarryFlag, (value&0xF) == 0)
	cpu.resetFlag(subFlag)
	return 12
}

// DEC (HL)
func opcode0x35(cpu *CPU) int {
	address := cpu.getHL()
	value := cpu.bus.Read(address)
	value--
	cpu.bus.Write(address, value)

	cpu.setFlagToCondition(zeroFlag, value == 0)
	cpu.setFlagToCondition(halfCarryFlag, (value&0xF) == 0xF)
	cpu.setFlag(subFlag)
	return 12
}

// LD (HL), n
func opcode0x36(cpu *CPU) int {
	cpu.bus.Write(cpu.getHL(), cpu.readImmediate())
	return 12
}

// SCF
func opcode0x37(cpu *CPU) int {
	cpu.setFlag(carryFlag)
	cpu.resetFlag(subFlag)
	cpu.resetFlag(halfCarryFlag)
	return 4
}

// JR C, n
func opcode0x38(cpu *CPU) int {
	if cpu.isSetFlag(carryFlag) {
		cpu.jr()
		return 12
	}
	cpu.pc++
	return 8
}

// ADD HL, SP
func opcode0x39(cpu *CPU) int { cpu.addToHL(cpu.sp); return 8 }

// LDD A, (HL)
func opcode0x3A(cpu *CPU) int {
	cpu.a = cpu.bus.Read(cpu.getHL())
	cpu.setHL(cpu.getHL() - 1)
	return 8
}

// DEC SP
func opcode0x3B(cpu *CPU) int { cpu.sp--; return 8 }

// INC A
func opcode0x3C(cpu *CPU) int { cpu.inc(&cpu.a); return 4 }

// DEC A
func opcode0x3D(cpu *CPU) int { cpu.dec(&cpu.a); return 4 }

// LD A, n
func opcode0x3E(cpu *CPU) int {
	cpu.a = cpu.readImmediate()
	return 8
}

// CCF
func opcode0x3F(cpu *CPU) int {
	cpu.resetFlag(subFlag)
	cpu.resetFlag(halfCarryFlag)
	cpu.setFlagToCondition(carryFlag, !cpu.isSetFlag(carryFlag))
	return 4
}

// LD B, {B..A} (0x40-0x47)
func opcode0x40(_ *CPU) int   { return 4 }
func opcode0x41(cpu *CPU) int { cpu.b = cpu.c; return 4 }
func opcode0x42(cpu *CPU) int { cpu.b = cpu.d; return 4 }
func opcode0x43(cpu *CPU) int { cpu.b = cpu.e; return 4 }
func opcode0x44(cpu *CPU) int { cpu.b = cpu.h; return 4 }
func opcode0x45(cpu *CPU) int { cpu.b = cpu.l; return 4 }
func opcode0x46(cpu *CPU) int { cpu.b = cpu.bus.Read(cpu.getHL()); return 8 }
func opcode0x47(cpu *CPU) int { cpu.b = cpu.a; return 4 }

// LD C, {B..A} (0x48-0x4F)
func opcode0x48(cpu *CPU) int { cpu.c = cpu.b; return 4 }
func opcode0x49(_ *CPU) int   { return 4 }
func opcode0x4A(cpu *CPU) int { cpu.c = cpu.d; return 4 }
func opcode0x4B(cpu *CPU) int { cpu.c = cpu.e; return 4 }
func opcode0x4C(cpu *CPU) int { cpu.c = cpu.h; return 4 }
func opcode0x4D(cpu *CPU) int { cpu.c = cpu.l; return 4 }
func opcode0x4E(cpu *CPU) int { cpu.c = cpu.bus.Read(cpu.getHL()); return 8 }
func opcode0x4F(cpu *CPU) int { cpu.c = cpu.a; return 4 }

// LD D, {B..A} (0x50-0x57)
func opcode0x50(cpu *CPU) int { cpu.d = cpu.b; return 4 }
func opcode0x51(cpu *CPU) int { cpu.d = cpu.c; return 4 }
func opcode0x52(_ *CPU) int   { return 4 }
func opcode0x53(cpu *CPU) int { cpu.d = cpu.e; return 4 }
func opcode0x54(cpu *CPU) int { cpu.d = cpu.h; return 4 }
func opcode0x55(cpu *CPU) int { cpu.d = cpu.l; return 4 }
func opcode0x56(cpu *CPU) int { cpu.d = cpu.bus.Read(cpu.getHL()); return 8 }
func opcode0x57(cpu *CPU) int { cpu.d = cpu.a; return 4 }

// LD E, {B..A} (0x58-0x5F)
func opcode0x58(cpu *CPU) int { cpu.e = cpu.b; return 4 }
func opcode0x59(cpu *CPU) int { cpu.e = cpu.c; return 4 }
func opcode0x5A(cpu *CPU) int { cpu.e = cpu.d; return 4 }
func opcode0x5B(_ *CPU) int   { return 4 }
func opcode0x5C(cpu *CPU) int { cpu.e = cpu.h; return 4 }
func opcode0x5D(cpu *CPU) int { cpu.e = cpu.l; return 4 }
func opcode0x5E(cpu *CPU) int { cpu.e = cpu.bus.Read(cpu.getHL()); return 8 }
func opcode0x5F(cpu *CPU) int { cpu.e = cpu.a; return 4 }

// LD H, {B..A} (0x60-0x67)
func opcode0x60(cpu *CPU) int { cpu.h = cpu.b; return 4 }
func opcode0x61(cpu *CPU) int { cpu.h = cpu.c; return 4 }
func opcode0x62(cpu *CPU) int { cpu.h = cpu.d; return 4 }
func opcode0x63(cpu *CPU) int { cpu.h = cpu.e; return 4 }
func opcode0x64(_ *CPU) int   { return 4 }
func opcode0x65(cpu *CPU) int { cpu.h = cpu.l; return 4 }
func opcode0x66(cpu *CPU) int { cpu.h = cpu.bus.Read(cpu.getHL()); return 8 }
func opcode0x67(cpu *CPU) int { cpu.h = cpu.a; return 4 }

// LD L, {B..A} (0x68-0x6F)
func opcode0x68(cpu *CPU) int { cpu.l = cpu.b; return 4 }
func opcode0x69(cpu *CPU) int { cpu.l = cpu.c; return 4 }
func opcode0x6A(cpu *CPU) int { cpu.l = cpu.d; return 4 }
func opcode0x6B(cpu *CPU) int { cpu.l = cpu.e; return 4 }
func opcode0x6C(cpu *CPU) int { cpu.l = cpu.h; return 4 }
func opcode0x6D(_ *CPU) int   { return 4 }
func opcode0x6E(cpu *CPU) int { cpu.l = cpu.bus.Read(cpu.getHL()); return 8 }
func opcode0x6F(cpu *CPU) int { cpu.l = cpu.a; return 4 }

// LD (HL), {B..A} (0x70-0x77); HALT lives at 0x76
func opcode0x70(cpu *CPU) int { cpu.bus.Write(cpu.getHL(), cpu.b); return 8 }
func opcode0x71(cpu *CPU) int { cpu.bus.Write(cpu.getHL(), cpu.c); return 8 }
func opcode0x72(cpu *CPU) int { cpu.bus.Write(cpu.getHL(), cpu.d); return 8 }
func opcode0x73(cpu *CPU) int { cpu.bus.Write(cpu.getHL(), cpu.e); return 8 }
func opcode0x74(cpu *CPU) int { cpu.bus.Write(cpu.getHL(), cpu.h); return 8 }
func opcode0x75(cpu *CPU) int { cpu.bus.Write(cpu.getHL(), cpu.l); return 8 }

// HALT
func opcode0x76(cpu *CPU) int {
	cpu.halted = true
	return 4
}

func opcode0x77(cpu *CPU) int { cpu.bus.Write(cpu.getHL(), cpu.a); return 8 }

// LD A, {B..A} (0x78-0x7F)
func opcode0x78(cpu *CPU) int { cpu.a = cpu.b; return 4 }
func opcode0x79(cpu *CPU) int { cpu.a = cpu.c; return 4 }
func opcode0x7A(cpu *CPU) int { cpu.a = cpu.d; return 4 }
func opcode0x7B(cpu *CPU) int { cpu.a = cpu.e; return 4 }
func opcode0x7C(cpu *CPU) int { cpu.a = cpu.h; return 4 }
func opcode0x7D(cpu *CPU) int { cpu.a = cpu.l; return 4 }
func opcode0x7E(cpu *CPU) int { cpu.a = cpu.bus.Read(cpu.getHL()); return 8 }
func opcode0x7F(_ *CPU) int   { return 4 }

// ADD A, {B..A} (0x80-0x87)
func opcode0x80(cpu *CPU) int { cpu.addToA(cpu.b); return 4 }
func opcode0x81(cpu *CPU) int { cpu.addToA(cpu.c); return 4 }
func opcode0x82(cpu *CPU) int { cpu.addToA(cpu.d); return 4 }
func opcode0x83(cpu *CPU) int { cpu.addToA(cpu.e); return 4 }
func opcode0x84(cpu *CPU) int { cpu.addToA(cpu.h); return 4 }
func opcode0x85(cpu *CPU) int { cpu.addToA(cpu.l); return 4 }
func opcode0x86(cpu *CPU) int { cpu.addToA(cpu.bus.Read(cpu.getHL())); return 8 }
func opcode0x87(cpu *CPU) int { cpu.addToA(cpu.a); return 4 }

// ADC A, {B..A} (0x88-0x8F)
func opcode0x88(cpu *CPU) int { cpu.adc(cpu.b); return 4 }
func opcode0x89(cpu *CPU) int { cpu.adc(cpu.c); return 4 }
func opcode0x8A(cpu *CPU) int { cpu.adc(cpu.d); return 4 }
func opcode0x8B(cpu *CPU) int { cpu.adc(cpu.e); return 4 }
func opcode0x8C(cpu *CPU) int { cpu.adc(cpu.h); return 4 }
func opcode0x8D(cpu *CPU) int { cpu.adc(cpu.l); return 4 }
func opcode0x8E(cpu *CPU) int { cpu.adc(cpu.bus.Read(cpu.getHL())); return 8 }
func opcode0x8F(cpu *CPU) int { cpu.adc(cpu.a); return 4 }

// SUB {B..A} (0x90-0x97)
func opcode0x90(cpu *CPU) int { cpu.sub(cpu.b); return 4 }
func opcode0x91(cpu *CPU) int { cpu.sub(cpu.c); return 4 }
func opcode0x92(cpu *CPU) int { cpu.sub(cpu.d); return 4 }
func opcode0x93(cpu *CPU) int { cpu.sub(cpu.e); return 4 }
func opcode0x94(cpu *CPU) int { cpu.sub(cpu.h); return 4 }
func opcode0x95(cpu *CPU) int { cpu.sub(cpu.l); return 4 }
func opcode0x96(cpu *CPU) int { cpu.sub(cpu.bus.Read(cpu.getHL())); return 8 }
func opcode0x97(cpu *CPU) int { cpu.sub(cpu.a); return 4 }

// SBC A, {B..A} (0x98-0x9F)
func opcode0x98(cpu *CPU) int { cpu.sbc(cpu.b); return 4 }
func opcode0x99(cpu *CPU) int { cpu.sbc(cpu.c); return 4 }
func opcode0x9A(cpu *CPU) int { cpu.sbc(cpu.d); return 4 }
func opcode0x9B(cpu *CPU) int { cpu.sbc(cpu.e); return 4 }
func opcode0x9C(cpu *CPU) int { cpu.sbc(cpu.h); return 4 }
func opcode0x9D(cpu *CPU) int { cpu.sbc(cpu.l); return 4 }
func opcode0x9E(cpu *CPU) int { cpu.sbc(cpu.bus.Read(cpu.getHL())); return 8 }
func opcode0x9F(cpu *CPU) int { cpu.sbc(cpu.a); return 4 }

// AND {B..A} (0xA0-0xA7)
func opcode0xA0(cpu *CPU) int { cpu.and(cpu.b); return 4 }
func opcode0xA1(cpu *CPU) int { cpu.and(cpu.c); return 4 }
func opcode0xA2(cpu *CPU) int { cpu.and(cpu.d); return 4 }
func opcode0xA3(cpu *CPU) int { cpu.and(cpu.e); return 4 }
func opcode0xA4(cpu *CPU) int { cpu.and(cpu.h); return 4 }
func opcode0xA5(cpu *CPU) int { cpu.and(cpu.l); return 4 }
func opcode0xA6(cpu *CPU) int { cpu.and(cpu.bus.Read(cpu.getHL())); return 8 }
func opcode0xA7(cpu *CPU) int { cpu.and(cpu.a); return 4 }

// XOR {B..A} (0xA8-0xAF)
func opcode0xA8(cpu *CPU) int { cpu.xor(cpu.b); return 4 }
func opcode0xA9(cpu *CPU) int { cpu.xor(cpu.c); return 4 }
func opcode0xAA(cpu *CPU) int { cpu.xor(cpu.d); return 4 }
func opcode0xAB(cpu *CPU) int { cpu.xor(cpu.e); return 4 }
func opcode0xAC(cpu *CPU) int { cpu.xor(cpu.h); return 4 }
func opcode0xAD(cpu *CPU) int { cpu.xor(cpu.l); return 4 }
func opcode0xAE(cpu *CPU) int { cpu.xor(cpu.bus.Read(cpu.getHL())); return 8 }
func opcode0xAF(cpu *CPU) int { cpu.xor(cpu.a); return 4 }

// OR {B..A} (0xB0-0xB7)
func opcode0xB0(cpu *CPU) int { cpu.or(cpu.b); return 4 }
func opcode0xB1(cpu *CPU) int { cpu.or(cpu.c); return 4 }
func opcode0xB2(cpu *CPU) int { cpu.or(cpu.d); return 4 }
func opcode0xB3(cpu *CPU) int { cpu.or(cpu.e); return 4 }
func opcode0xB4(cpu *CPU) int { cpu.or(cpu.h); return 4 }
func opcode0xB5(cpu *CPU) int { cpu.or(cpu.l); return 4 }
func opcode0xB6(cpu *CPU) int { cpu.or(cpu.bus.Read(cpu.getHL())); return 8 }
func opcode0xB7(cpu *CPU) int { cpu.or(cpu.a); return 4 }

// CP {B..A} (0xB8-0xBF)
func opcode0xB8(cpu *CPU) int { cpu.cp(cpu.b); return 4 }
func opcode0xB9(cpu *CPU) int { cpu.cp(cpu.c); return 4 }
func opcode0xBA(cpu *CPU) int { cpu.cp(cpu.d); return 4 }
func opcode0xBB(cpu *CPU) int { cpu.cp(cpu.e); return 4 }
func opcode0xBC(cpu *CPU) int { cpu.cp(cpu.h); return 4 }
func opcode0xBD(cpu *CPU) int { cpu.cp(cpu.l); return 4 }
func opcode0xBE(cpu *CPU) int { cpu.cp(cpu.bus.Read(cpu.getHL())); return 8 }
func opcode0xBF(cpu *CPU) int { cpu.cp(cpu.a); return 4 }

// RET NZ
func opcode0xC0(cpu *CPU) int {
	if !cpu.isSetFlag(zeroFlag) {
		cpu.ret()
		return 20
	}
	return 8
}

// POP BC
func opcode0xC1(cpu *CPU) int { cpu.setBC(cpu.popStack()); return 12 }

// JP NZ, nn
func opcode0xC2(cpu *CPU) int {
	target := cpu.readImmediateWord()
	if !cpu.isSetFlag(zeroFlag) {
		cpu.jp(target)
		return 16
	}
	return 12
}

// JP nn
func opcode0xC3(cpu *CPU) int {
	cpu.jp(cpu.readImmediateWord())
	return 16
}

// CALL NZ, nn
func opcode0xC4(cpu *CPU) int {
	target := cpu.readImmediateWord()
	if !cpu.isSetFlag(zeroFlag) {
		cpu.call(target)
		return 24
	}
	return 12
}

// PUSH BC
func opcode0xC5(cpu *CPU) int { cpu.pushStack(cpu.getBC()); return 16 }

// ADD A, n
func opcode0xC6(cpu *CPU) int {
	cpu.addToA(cpu.readImmediate())
	return 8
}

// RST 0x00
func opcode0xC7(cpu *CPU) int { cpu.rst(0x00); return 16 }

// RET Z
func opcode0xC8(cpu *CPU) int {
	if cpu.isSetFlag(zeroFlag) {
		cpu.ret()
		return 20
	}
	return 8
}

// RET
func opcode0xC9(cpu *CPU) int { cpu.ret(); return 16 }

// JP Z, nn
func opcode0xCA(cpu *CPU) int {
	target := cpu.readImmediateWord()
	if cpu.isSetFlag(zeroFlag) {
		cpu.jp(target)
		return 16
	}
	return 12
}

// 0xCB is the extended-table prefix; executeOne never dispatches it directly
// since the prefix byte is folded into currentOpcode during Decode.
func opcode0xCB(_ *CPU) int { return 4 }

// CALL Z, nn
func opcode0xCC(cpu *CPU) int {
	target := cpu.readImmediateWord()
	if cpu.isSetFlag(zeroFlag) {
		cpu.call(target)
		return 24
	}
	return 12
}

// CALL nn
func opcode0xCD(cpu *CPU) int {
	cpu.call(cpu.readImmediateWord())
	return 24
}

// ADC A, n
func opcode0xCE(cpu *CPU) int {
	cpu.adc(cpu.readImmediate())
	return 8
}

// RST 0x08
func opcode0xCF(cpu *CPU) int { cpu.rst(0x08); return 16 }

// RET NC
func opcode0xD0(cpu *CPU) int {
	if !cpu.isSetFlag(carryFlag) {
		cpu.ret()
		return 20
	}
	return 8
}

// POP DE
func opcode0xD1(cpu *CPU) int { cpu.setDE(cpu.popStack()); return 12 }

// JP NC, nn
func opcode0xD2(cpu *CPU) int {
	target := cpu.readImmediateWord()
	if !cpu.isSetFlag(carryFlag) {
		cpu.jp(target)
		return 16
	}
	return 12
}

func opcode0xD3(cpu *CPU) int { return cpu.fail(ErrInvalidOpcode) }

// CALL NC, nn
func opcode0xD4(cpu *CPU) int {
	target := cpu.readImmediateWord()
	if !cpu.isSetFlag(carryFlag) {
		cpu.call(target)
		return 24
	}
	return 12
}

// PUSH DE
func opcode0xD5(cpu *CPU) int { cpu.pushStack(cpu.getDE()); return 16 }

// SUB n
func opcode0xD6(cpu *CPU) int {
	cpu.sub(cpu.readImmediate())
	return 8
}

// RST 0x10
func opcode0xD7(cpu *CPU) int { cpu.rst(0x10); return 16 }

// RET C
func opcode0xD8(cpu *CPU) int {
	if cpu.isSetFlag(carryFlag) {
		cpu.ret()
		return 20
	}
	return 8
}

// RETI
func opcode0xD9(cpu *CPU) int {
	cpu.ret()
	cpu.interruptsEnabled = true
	cpu.eiPending = false
	return 16
}

// JP C, nn
func opcode0xDA(cpu *CPU) int {
	target := cpu.readImmediateWord()
	if cpu.isSetFlag(carryFlag) {
		cpu.jp(target)
		return 16
	}
	return 12
}

func opcode0xDB(cpu *CPU) int { return cpu.fail(ErrInvalidOpcode) }

// CALL C, nn
func opcode0xDC(cpu *CPU) int {
	target := cpu.readImmediateWord()
	if cpu.isSetFlag(carryFlag) {
		cpu.call(target)
		return 24
	}
	return 12
}

func opcode0xDD(cpu *CPU) int { return cpu.fail(ErrInvalidOpcode) }

// SBC A, n
func opcode0xDE(cpu *CPU) int {
	cpu.sbc(cpu.readImmediate())
	return 8
}

// RST 0x18
func opcode0xDF(cpu *CPU) int { cpu.rst(0x18); return 16 }

// LDH (n), A
func opcode0xE0(cpu *CPU) int {
	offset := cpu.readImmediate()
	cpu.bus.Write(0xFF00|uint16(offset), cpu.a)
	return 12
}

// POP HL
func opcode0xE1(cpu *CPU) int { cpu.setHL(cpu.popStack()); return 12 }

// LD (0xFF00+C), A
func opcode0xE2(cpu *CPU) int {
	cpu.bus.Write(0xFF00|uint16(cpu.c), cpu.a)
	return 8
}

func opcode0xE3(cpu *CPU) int { return cpu.fail(ErrInvalidOpcode) }
func opcode0xE4(cpu *CPU) int { return cpu.fail(ErrInvalidOpcode) }

// PUSH HL
func opcode0xE5(cpu *CPU) int { cpu.pushStack(cpu.getHL()); return 16 }

// AND n
func opcode0xE6(cpu *CPU) int {
	cpu.and(cpu.readImmediate())
	return 8
}

// RST 0x20
func opcode0xE7(cpu *CPU) int { cpu.rst(0x20); return 16 }

// ADD SP, n
func opcode0xE8(cpu *CPU) int {
	cpu.sp = cpu.addToSP(cpu.readSignedImmediate())
	return 16
}

// JP (HL)
func opcode0xE9(cpu *CPU) int {
	cpu.pc = cpu.getHL()
	return 4
}

// LD (nn), A
func opcode0xEA(cpu *CPU) int {
	cpu.bus.Write(cpu.readImmediateWord(), cpu.a)
	return 16
}

func opcode0xEB(cpu *CPU) int { return cpu.fail(ErrInvalidOpcode) }
func opcode0xEC(cpu *CPU) int { return cpu.fail(ErrInvalidOpcode) }
func opcode0xED(cpu *CPU) int { return cpu.fail(ErrInvalidOpcode) }

// XOR n
func opcode0xEE(cpu *CPU) int {
	cpu.xor(cpu.readImmediate())
	return 8
}

// RST 0x28
func opcode0xEF(cpu *CPU) int { cpu.rst(0x28); return 16 }

// LDH A, (n)
func opcode0xF0(cpu *CPU) int {
	offset := cpu.readImmediate()
	cpu.a = cpu.bus.Read(0xFF00 | uint16(offset))
	return 12
}

// POP AF
func opcode0xF1(cpu *CPU) int { cpu.setAF(cpu.popStack()); return 12 }

// LD A, (0xFF00+C)
func opcode0xF2(cpu *CPU) int {
	cpu.a = cpu.bus.Read(0xFF00 | uint16(cpu.c))
	return 8
}

// DI
func opcode0xF3(cpu *CPU) int {
	cpu.interruptsEnabled = false
	cpu.eiPending = false
	return 4
}

func opcode0xF4(cpu *CPU) int { return cpu.fail(ErrInvalidOpcode) }

// PUSH AF
func opcode0xF5(cpu *CPU) int { cpu.pushStack(cpu.getAF()); return 16 }

// OR n
func opcode0xF6(cpu *CPU) int {
	cpu.or(cpu.readImmediate())
	return 8
}

// RST 0x30
func opcode0xF7(cpu *CPU) int { cpu.rst(0x30); return 16 }

// LD HL, SP+n
func opcode0xF8(cpu *CPU) int {
	cpu.setHL(cpu.addToSP(cpu.readSignedImmediate()))
	return 12
}

// LD SP, HL
func opcode0xF9(cpu *CPU) int {
	cpu.sp = cpu.getHL()
	return 8
}

// LD A, (nn)
func opcode0xFA(cpu *CPU) int {
	cpu.a = cpu.bus.Read(cpu.readImmediateWord())
	return 16
}

// EI
func opcode0xFB(cpu *CPU) int {
	cpu.eiPending = true
	return 4
}

func opcode0xFC(cpu *CPU) int { return cpu.fail(ErrInvalidOpcode) }
func opcode0xFD(cpu *CPU) int { return cpu.fail(ErrInvalidOpcode) }

// CP n
func opcode0xFE(cpu *CPU) int {
	cpu.cp(cpu.readImmediate())
	return 8
}

// RST 0x38
func opcode0xFF(cpu *CPU) int { cpu.rst(0x38); return 16 }
