package credentials

import (
	"fmt"
	"os"

	"github.com/mbopage/ezycook-cli/internal/common"
	"github.com/mbopage/ezycook-cli/internal/cryptox"
)

const (
	saltSize   = 16
	secretSize = 32
)

// LoadOrCreateKey reads the per-installation key material from path, creating
// it on first run, and returns the derived 32-byte AES key. The file holds
// salt followed by secret and is written with mode 0600.
func LoadOrCreateKey(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		data, err = createKeyFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	if len(data) != saltSize+secretSize {
		return nil, fmt.Errorf("key file %s is corrupt", path)
	}

	salt, secret := data[:saltSize], data[saltSize:]
	key := cryptox.DeriveKey(secret, salt)
	common.WipeByteArray(data)
	return key, nil
}

func createKeyFile(path string) ([]byte, error) {
	data := common.GenerateRandByteArray(saltSize + secretSize)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, err
	}
	return data, nil
}
