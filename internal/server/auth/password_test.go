package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest must not equal the plaintext")
	}

	if !CheckPassword(digest, "s3cret") {
		t.Fatalf("expected password to verify")
	}
	if CheckPassword(digest, "wrong") {
		t.Fatalf("expected wrong password to fail")
	}
}
