package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"

	log "github.com/inconshreveable/log15"
)

var secretKey []byte

var logger = log.New("module", "utils")

// InitCrypto loads the AES-256 key used to encrypt workspace access tokens
// at rest. The key must be exactly 32 bytes.
func InitCrypto(key string) error {
	if len(key) != 32 {
		return errors.New("ENCRYPTION_KEY must be 32 characters long for AES-256 encryption")
	}
	secretKey = []byte(key)
	return nil
}

func Encrypt(plainText string) (string, error) {
	block, err := aes.NewCipher(secretKey)
	if err != nil {
		logger.Error("failed to create cipher block", "err", err)
		return "", err
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		logger.Error("failed to create GCM block", "err", err)
		return "", err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		logger.Error("failed to generate nonce", "err", err)
		return "", err
	}

	cipherText := aesGCM.Seal(nonce, nonce, []byte(plainText), nil)
	return base64.StdEncoding.EncodeToString(cipherText), nil
}

func Decrypt(encrypted string) (string, error) {
	cipherData, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		logger.Error("failed to base64 decode", "err", err)
		return "", err
	}

	block, err := aes.NewCipher(secretKey)
	if err != nil {
		logger.Error("failed to create cipher block", "err", err)
		return "", err
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		logger.Error("failed to create GCM block", "err", err)
		return "", err
	}

	nonceSize := aesGCM.NonceSize()
	if len(cipherData) < nonceSize {
		return "", errors.New("cipher text too short")
	}

	nonce := cipherData[:nonceSize]
	cipherText := cipherData[nonceSize:]

	plainText, err := aesGCM.Open(nil, nonce, cipherText, nil)
	if err != nil {
		logger.Error("failed to decrypt message", "err", err)
		return "", err
	}

	return string(plainText), nil
}
