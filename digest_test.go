package transcode

import (
	"errors"
	"testing"
)

func TestDigest_KnownVectors(t *testing.T) {
	tests := []struct {
		algo DigestAlgo
		want string
	}{
		{DigestSHA256, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{DigestSHA3_256, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{DigestBLAKE2b256, "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319"},
		{DigestXXH64, "44bc2cf5ad770999"},
	}

	for _, tt := range tests {
		got, err := Fingerprint(Hex, tt.algo, []byte("abc"))
		if err != nil {
			t.Errorf("Fingerprint(%s) error: %v", tt.algo, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Fingerprint(%s) = %q, want %q", tt.algo, got, tt.want)
		}
	}
}

func TestDigest_Sizes(t *testing.T) {
	tests := []struct {
		algo DigestAlgo
		size int
	}{
		{DigestSHA256, 32},
		{DigestSHA512, 64},
		{DigestBLAKE2b256, 32},
		{DigestBLAKE2b512, 64},
		{DigestSHA3_256, 32},
		{DigestSHA3_512, 64},
		{DigestXXH64, 8},
	}

	for _, tt := range tests {
		if !IsValidDigestAlgo(tt.algo) {
			t.Errorf("IsValidDigestAlgo(%s) = false", tt.algo)
		}
		h, err := HasherFor(tt.algo)
		if err != nil {
			t.Fatalf("HasherFor(%s) error: %v", tt.algo, err)
		}
		if h.Size() != tt.size {
			t.Errorf("HasherFor(%s).Size() = %d, want %d", tt.algo, h.Size(), tt.size)
		}
		sum, _ := Digest(tt.algo, []byte("data"))
		if len(sum) != tt.size {
			t.Errorf("Digest(%s) length = %d, want %d", tt.algo, len(sum), tt.size)
		}
	}
}

func TestDigest_UnknownAlgorithm(t *testing.T) {
	if IsValidDigestAlgo("md5") {
		t.Error("IsValidDigestAlgo(md5) = true")
	}
	if _, err := Digest("md5", nil); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Digest(md5) error = %v, want ErrUnknownAlgorithm", err)
	}
	if _, err := Fingerprint(Hex, "md5", nil); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Fingerprint(md5) error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestVerifyFingerprint(t *testing.T) {
	data := []byte("payload")

	for _, c := range []Codec[string, []byte]{Base64, Base64URL, Hex} {
		fp, err := Fingerprint(c, DigestSHA512, data)
		if err != nil {
			t.Fatalf("%s: Fingerprint() error: %v", c.Name(), err)
		}

		ok, err := VerifyFingerprint(c, DigestSHA512, data, fp)
		if err != nil || !ok {
			t.Errorf("%s: VerifyFingerprint() = %v, %v; want true, nil", c.Name(), ok, err)
		}

		ok, err = VerifyFingerprint(c, DigestSHA512, []byte("tampered"), fp)
		if err != nil || ok {
			t.Errorf("%s: VerifyFingerprint(tampered) = %v, %v; want false, nil", c.Name(), ok, err)
		}
	}
}

func TestVerifyFingerprint_WrongSize(t *testing.T) {
	ok, err := VerifyFingerprint(Hex, DigestSHA256, []byte("x"), "abcd")
	if err != nil {
		t.Fatalf("VerifyFingerprint() error: %v", err)
	}
	if ok {
		t.Error("short fingerprint should not verify")
	}
}

func TestVerifyFingerprint_Malformed(t *testing.T) {
	_, err := VerifyFingerprint(Hex, DigestSHA256, []byte("x"), "zz")
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("VerifyFingerprint(zz) error = %v, want ErrInvalidCharacter", err)
	}
}
