package persist

import (
	"os"
	"testing"
)

func TestCRC32KnownVector(t *testing.T) {
	// "123456789" is the standard CRC-32/ISO-HDLC (IEEE) test vector.
	got := CRC32([]byte("123456789"))
	want := uint32(0xCBF43926)
	if got != want {
		t.Fatalf("CRC32(\"123456789\") = 0x%08X, want 0x%08X", got, want)
	}
}

func TestLegacyXORChecksumDiffersFromCRC32(t *testing.T) {
	data := []byte("tileland save data")
	if LegacyXORChecksum(data) == CRC32(data) {
		t.Fatal("legacy XOR checksum collided with CRC32 on this input (extremely unlikely, check the algorithms)")
	}
}

func TestTamperedHeaderRejected(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/tamper.tlwf"
	w := buildTestWorld()
	if err := Save(w, Metadata{Seed: 1}, path); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	raw[20] ^= 0xFF // corrupt a byte inside the header region
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := Load(path, nil); err == nil {
		t.Fatal("expected tampered header to be rejected")
	}
}
