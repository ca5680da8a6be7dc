// Package hash 提供密钥摘要所需的哈希原语
//
// Bitcoin 风格的两种组合哈希：
// - Hash160：RIPEMD160(SHA256(data))，用于公钥摘要和地址派生
// - DoubleSHA256：SHA256(SHA256(data))，用于 Base58Check 校验和
package hash

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

const (
	// Hash160Size Hash160 摘要长度（20字节）
	Hash160Size = ripemd160.Size
	// ChecksumSize Base58Check 校验和长度（4字节）
	ChecksumSize = 4
)

// Hash160 计算 RIPEMD160(SHA256(data))
func Hash160(data []byte) []byte {
	first := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(first[:])
	return h.Sum(nil)
}

// DoubleSHA256 计算 SHA256(SHA256(data))
func DoubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Checksum 返回 DoubleSHA256 的前4字节，用作 Base58Check 校验和
func Checksum(data []byte) []byte {
	return DoubleSHA256(data)[:ChecksumSize]
}
