package keyring

import (
	"strings"
	"testing"
)

func TestSecretURIConcatenates(t *testing.T) {
	secret := newSecretURI("seed words here", "//Alice///pwd")
	if got := secret.String(); got != "seed words here//Alice///pwd" {
		t.Errorf("Unexpected secret view: %q", got)
	}
}

func TestSecretURIDoesNotReallocate(t *testing.T) {
	secret := newSecretURI("abc", "//def")
	if len(secret.buf) != cap(secret.buf) {
		t.Errorf("Expected an exactly sized buffer, len %d cap %d", len(secret.buf), cap(secret.buf))
	}
}

func TestSecretURIWipe(t *testing.T) {
	secret := newSecretURI("correct horse battery staple", "//0")
	view := secret.String()

	secret.Wipe()

	for i, b := range secret.buf {
		if b != 0 {
			t.Fatalf("Byte %d not wiped: %x", i, b)
		}
	}

	// The string view aliases the buffer, so the secret is unreadable
	// through it as well.
	if view != strings.Repeat("\x00", len(view)) {
		t.Error("Expected the string view to alias the wiped buffer")
	}
}

func TestSecretURIEmptyPath(t *testing.T) {
	secret := newSecretURI("only the seed", "")
	if secret.String() != "only the seed" {
		t.Errorf("Unexpected view: %q", secret.String())
	}
	secret.Wipe()
	if secret.String() != strings.Repeat("\x00", len("only the seed")) {
		t.Error("Expected a wiped view")
	}
}
