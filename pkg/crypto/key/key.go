// Package key 提供椭圆曲线密钥值类型及其格式转换
//
// 🔑 **密钥抽象 (Key Value Type)**
//
// Key 表示一把私钥（秘密标量）或公钥（曲线点），并在其上提供全部
// 标准序列化格式：
// - SEC 公钥编码（压缩/未压缩）及其十六进制文本
// - WIF 私钥导出编码
// - Hash160 摘要、指纹与地址派生
// - 确定性签名与验签（DER 编码）
//
// 🏗️ **设计原则**
// - 显式注入：每个 Key 在构造时显式携带 Generator 与 NetworkProfile，
//   不存在隐式默认曲线或默认网络
// - 构造即验证：标量范围与曲线成员检测在构造时完成，
//   无效输入永远不会产生可用的 Key
// - 构造后不可变：仅摘要缓存惰性填充，且填充幂等、互斥保护
//
// 🔗 **组件关系**
// - Generator 能力：默认由 pkg/crypto/secp256k1 提供
// - NetworkProfile 能力：默认由 pkg/crypto/network 提供
// - 签名编解码：委托 pkg/crypto/dersig
package key

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"sync"

	cryptointf "github.com/weisyn/keycore/pkg/interfaces/crypto"
)

// 错误定义
var (
	// ErrInvalidArguments 秘密标量与公钥点同时给出或同时缺失
	ErrInvalidArguments = errors.New("key: exactly one of secret exponent or public pair must be supplied")
	// ErrInvalidSecretExponent 秘密标量超出 [1, n) 范围
	ErrInvalidSecretExponent = errors.New("key: secret exponent out of range")
	// ErrInvalidPublicPoint 公钥点不在曲线上或为无穷远点
	ErrInvalidPublicPoint = errors.New("key: public pair is not a valid curve point")
	// ErrInvalidEncoding 公钥字节编码格式非法
	ErrInvalidEncoding = errors.New("key: invalid public key encoding")
	// ErrNotPrivate 对公钥执行了需要私钥的操作
	ErrNotPrivate = errors.New("key: operation requires a private key")
	// ErrInvalidDigest 消息摘要长度非法
	ErrInvalidDigest = errors.New("key: message digest must be 32 bytes")
)

const (
	// coordSize 坐标与标量的固定编码宽度（32字节）
	coordSize = 32
	// DigestSize 签名消息摘要长度（32字节）
	DigestSize = 32
	// FingerprintSize 指纹长度（Hash160 前4字节）
	FingerprintSize = 4
)

// PublicPair 曲线点的仿射坐标对
type PublicPair struct {
	X, Y *big.Int
}

// Key 表示一把私钥或公钥
//
// 由验证构造函数创建后不可变；仅 Hash160 缓存惰性填充。
// Generator 与 NetworkProfile 为共享只读引用，多个 Key 可共用同一实例。
type Key struct {
	secret     *big.Int // 私钥标量，公钥为 nil
	pubX, pubY *big.Int // 公钥点坐标，始终存在
	compressed bool     // 默认序列化压缩风格

	generator cryptointf.Generator
	network   cryptointf.NetworkProfile

	// Hash160 缓存：每种压缩风格一个槽位，互斥保护，写入一次后只读
	cacheMu          sync.Mutex
	h160Compressed   []byte
	h160Uncompressed []byte
}

// New 创建 Key
//
// secret 与 pub 必须恰好给出一个；compressed 缺省为 true。
// 给出 secret 时公钥点经 Generator 基点标量乘法派生，这是
// 标量乘法在本类型中的唯一入口。
//
// 返回的错误可区分三类非法输入：
//   - ErrInvalidArguments：secret/pub 同时给出或同时缺失，或能力缺失
//   - ErrInvalidSecretExponent：标量不在 [1, n) 内
//   - ErrInvalidPublicPoint：点不在曲线上（含无穷远点）
func New(secret *big.Int, pub *PublicPair, gen cryptointf.Generator, profile cryptointf.NetworkProfile, compressed ...bool) (*Key, error) {
	if gen == nil || profile == nil {
		return nil, fmt.Errorf("%w: generator and network profile are required", ErrInvalidArguments)
	}
	if (secret == nil) == (pub == nil) {
		return nil, ErrInvalidArguments
	}

	k := &Key{
		compressed: true,
		generator:  gen,
		network:    profile,
	}
	if len(compressed) > 0 {
		k.compressed = compressed[0]
	}

	if secret != nil {
		// 标量范围：1 <= secret < n
		if secret.Sign() < 1 || secret.Cmp(gen.Order()) >= 0 {
			return nil, ErrInvalidSecretExponent
		}
		k.secret = new(big.Int).Set(secret)
		k.pubX, k.pubY = gen.ScalarBaseMult(k.secret)
	} else {
		if pub.X == nil || pub.Y == nil {
			return nil, ErrInvalidPublicPoint
		}
		k.pubX = new(big.Int).Set(pub.X)
		k.pubY = new(big.Int).Set(pub.Y)
	}

	// 无论派生还是外部给出，点都必须通过曲线成员检测；
	// 派生出无穷远点的极端情形同样在此被拒绝
	if !gen.ContainsPoint(k.pubX, k.pubY) {
		return nil, ErrInvalidPublicPoint
	}

	return k, nil
}

// FromSecretExponent 由秘密标量创建私钥
func FromSecretExponent(secret *big.Int, gen cryptointf.Generator, profile cryptointf.NetworkProfile, compressed ...bool) (*Key, error) {
	if secret == nil {
		return nil, ErrInvalidArguments
	}
	return New(secret, nil, gen, profile, compressed...)
}

// FromPublicPair 由曲线点创建公钥
func FromPublicPair(pub *PublicPair, gen cryptointf.Generator, profile cryptointf.NetworkProfile, compressed ...bool) (*Key, error) {
	if pub == nil {
		return nil, ErrInvalidArguments
	}
	return New(nil, pub, gen, profile, compressed...)
}

// Generate 用给定随机源创建新私钥
//
// 拒绝采样直到标量落入 [1, n)。
func Generate(rand io.Reader, gen cryptointf.Generator, profile cryptointf.NetworkProfile, compressed ...bool) (*Key, error) {
	if gen == nil || profile == nil {
		return nil, fmt.Errorf("%w: generator and network profile are required", ErrInvalidArguments)
	}
	order := gen.Order()
	buf := make([]byte, (order.BitLen()+7)/8)
	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, fmt.Errorf("key: read random: %w", err)
		}
		secret := new(big.Int).SetBytes(buf)
		if secret.Sign() < 1 || secret.Cmp(order) >= 0 {
			continue
		}
		return New(secret, nil, gen, profile, compressed...)
	}
}

// IsPrivate 返回是否持有秘密标量
func (k *Key) IsPrivate() bool {
	return k.secret != nil
}

// SecretExponent 返回秘密标量的副本；公钥返回 nil
func (k *Key) SecretExponent() *big.Int {
	if k.secret == nil {
		return nil
	}
	return new(big.Int).Set(k.secret)
}

// PublicPair 返回公钥点坐标的副本
func (k *Key) PublicPair() *PublicPair {
	return &PublicPair{
		X: new(big.Int).Set(k.pubX),
		Y: new(big.Int).Set(k.pubY),
	}
}

// IsCompressed 返回构造时记录的默认压缩风格
//
// 该标志只影响序列化默认值，不改变数学上的公钥点。
func (k *Key) IsCompressed() bool {
	return k.compressed
}

// PublicCopy 返回只含公钥的派生视图
//
// 私钥返回一个新的公钥 Key（相同公钥点、压缩默认值与能力引用）；
// 已是公钥时返回自身。
func (k *Key) PublicCopy() *Key {
	if k.secret == nil {
		return k
	}
	return &Key{
		pubX:       new(big.Int).Set(k.pubX),
		pubY:       new(big.Int).Set(k.pubY),
		compressed: k.compressed,
		generator:  k.generator,
		network:    k.network,
	}
}

// Equal 比较两把 Key 的公钥点与压缩默认值
//
// 私钥与其 PublicCopy 视为相等；压缩标志不同的同点 Key 视为不等，
// 因为两者的默认序列化输出不同。
func (k *Key) Equal(other *Key) bool {
	if other == nil {
		return false
	}
	return k.compressed == other.compressed &&
		k.pubX.Cmp(other.pubX) == 0 &&
		k.pubY.Cmp(other.pubY) == 0
}

// String 返回面向诊断的文本摘要
//
// 私钥输出 WIF 导出文本，公钥输出 SEC 十六进制文本。
// 仅用于诊断展示，不用于协议目的。
func (k *Key) String() string {
	if wif, ok := k.WIF(); ok {
		return wif
	}
	return k.SECHex()
}

// effCompressed 解析方法级压缩风格覆盖，缺省使用构造时的默认值
func (k *Key) effCompressed(override []bool) bool {
	if len(override) > 0 {
		return override[0]
	}
	return k.compressed
}
