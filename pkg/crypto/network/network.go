// Package network 提供网络编码规则能力的默认实现
//
// 📍 **网络配置 (Network Profile)**
//
// 每个网络由一组版本字节定义：
// - P2PKH 版本字节：地址编码前缀
// - WIF 版本字节：私钥导出编码前缀
//
// 编码统一采用 Base58Check：版本字节 + 载荷 + 双SHA256校验和前4字节。
// 配置实例构造后只读，可被任意数量的 Key 并发共享。
package network

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/base58"

	"github.com/weisyn/keycore/pkg/crypto/hash"
	cryptointf "github.com/weisyn/keycore/pkg/interfaces/crypto"
)

// 错误定义
var (
	// ErrInvalidChecksum 校验和错误
	ErrInvalidChecksum = errors.New("network: invalid checksum")
	// ErrInvalidVersion 版本字节不匹配
	ErrInvalidVersion = errors.New("network: version byte mismatch")
	// ErrInvalidLength 解码后长度非法
	ErrInvalidLength = errors.New("network: invalid payload length")
)

// AddressHashLength 地址载荷长度（20字节公钥摘要）
const AddressHashLength = hash.Hash160Size

// Params 描述一个目标网络的编码规则
type Params struct {
	name         string
	p2pkhVersion byte
	wifVersion   byte
}

// 确保 Params 实现了 cryptointf.NetworkProfile 接口
var _ cryptointf.NetworkProfile = (*Params)(nil)

// 预定义网络配置
var (
	// WESMainNet WES 主网（P2PKH 版本字节 0x1C，地址以 C 开头）
	WESMainNet = &Params{name: "wes", p2pkhVersion: 0x1C, wifVersion: 0xBC}
	// BitcoinMainNet Bitcoin 主网
	BitcoinMainNet = &Params{name: "btc", p2pkhVersion: 0x00, wifVersion: 0x80}
	// BitcoinTestNet3 Bitcoin 测试网
	BitcoinTestNet3 = &Params{name: "xtn", p2pkhVersion: 0x6F, wifVersion: 0xEF}
)

// NewParams 创建自定义网络配置
func NewParams(name string, p2pkhVersion, wifVersion byte) *Params {
	return &Params{name: name, p2pkhVersion: p2pkhVersion, wifVersion: wifVersion}
}

// Name 返回网络名称
func (p *Params) Name() string { return p.name }

// WIFForBlob 将私钥字节串编码为 WIF 导出文本
//
// blob 为 32 字节大端标量，压缩密钥在末尾多携带一个 0x01 标记字节。
func (p *Params) WIFForBlob(blob []byte) string {
	return checkEncode(p.wifVersion, blob)
}

// AddressForHash160 将 20 字节公钥摘要编码为 P2PKH 地址文本
func (p *Params) AddressForHash160(h160 []byte) string {
	return checkEncode(p.p2pkhVersion, h160)
}

// SECHexForBlob 将 SEC 公钥字节串标注为十六进制文本
func (p *Params) SECHexForBlob(sec []byte) string {
	return hex.EncodeToString(sec)
}

// DecodeWIF 解码 WIF 导出文本，返回原始私钥字节串（32 或 33 字节）
func (p *Params) DecodeWIF(text string) ([]byte, error) {
	blob, err := checkDecode(p.wifVersion, text)
	if err != nil {
		return nil, fmt.Errorf("decode wif: %w", err)
	}
	if len(blob) != 32 && len(blob) != 33 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidLength, len(blob))
	}
	return blob, nil
}

// DecodeAddress 解码 P2PKH 地址文本，返回 20 字节公钥摘要
func (p *Params) DecodeAddress(text string) ([]byte, error) {
	h160, err := checkDecode(p.p2pkhVersion, text)
	if err != nil {
		return nil, fmt.Errorf("decode address: %w", err)
	}
	if len(h160) != AddressHashLength {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidLength, len(h160))
	}
	return h160, nil
}

// ValidateAddress 验证地址格式、版本字节和校验和
func (p *Params) ValidateAddress(text string) error {
	_, err := p.DecodeAddress(text)
	return err
}

// checkEncode 使用版本字节和校验和编码数据（Base58Check）
func checkEncode(version byte, data []byte) string {
	// 载荷：版本字节 + 数据
	payload := make([]byte, 1+len(data))
	payload[0] = version
	copy(payload[1:], data)

	// 完整数据：载荷 + 双SHA256校验和前4字节
	full := append(payload, hash.Checksum(payload)...)

	return base58.Encode(full)
}

// checkDecode 解码 Base58Check 数据并验证版本字节与校验和
func checkDecode(version byte, encoded string) ([]byte, error) {
	decoded := base58.Decode(encoded)
	if len(decoded) < 1+hash.ChecksumSize {
		return nil, ErrInvalidLength
	}

	// 分离载荷与校验和
	payload := decoded[:len(decoded)-hash.ChecksumSize]
	checksum := decoded[len(decoded)-hash.ChecksumSize:]

	if !bytes.Equal(checksum, hash.Checksum(payload)) {
		return nil, ErrInvalidChecksum
	}
	if payload[0] != version {
		return nil, fmt.Errorf("%w: got 0x%02x, want 0x%02x", ErrInvalidVersion, payload[0], version)
	}

	return payload[1:], nil
}
