package ssh

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

// LoadOrCreateHostKey loads a PEM private key from path, or generates an
// ed25519 key and saves it there when the file is missing or unreadable.
func LoadOrCreateHostKey(path string, log *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		signer, err := xssh.ParsePrivateKey(data)
		if err == nil {
			log.Info("loaded host key", "path", path)
			return signer, nil
		}
		log.Warn("unreadable host key, generating a new one", "path", path, "err", err)
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}

	block, err := xssh.MarshalPrivateKey(key, "riddle-bridge host key")
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			log.Warn("host key not saved", "path", path, "err", err)
			return signer, nil
		}
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		log.Warn("host key not saved", "path", path, "err", err)
		return signer, nil
	}
	log.Info("generated host key", "path", path, "fingerprint", xssh.FingerprintSHA256(signer.PublicKey()))
	return signer, nil
}
