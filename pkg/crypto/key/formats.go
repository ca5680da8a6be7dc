package key

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/weisyn/keycore/pkg/crypto/dersig"
	"github.com/weisyn/keycore/pkg/crypto/hash"
	cryptointf "github.com/weisyn/keycore/pkg/interfaces/crypto"
)

// SEC 编码标签字节
const (
	secTagEven         byte = 0x02 // 压缩，y 为偶数
	secTagOdd          byte = 0x03 // 压缩，y 为奇数
	secTagUncompressed byte = 0x04 // 未压缩
)

// SEC 编码长度
const (
	secLenCompressed   = 1 + coordSize
	secLenUncompressed = 1 + 2*coordSize
)

// FromSEC 从 SEC 公钥字节编码创建公钥
//
// 压缩形式（0x02/0x03 + x）通过 Generator 求解曲线方程恢复 y，
// 未压缩形式（0x04 + x + y）直接取坐标。压缩标志按检测到的标签设置。
// 任何非法标签、长度错误或脱离曲线的点都返回 ErrInvalidEncoding。
func FromSEC(sec []byte, gen cryptointf.Generator, profile cryptointf.NetworkProfile) (*Key, error) {
	if len(sec) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidEncoding)
	}

	var pub PublicPair
	var compressed bool

	switch sec[0] {
	case secTagEven, secTagOdd:
		if len(sec) != secLenCompressed {
			return nil, fmt.Errorf("%w: compressed form must be %d bytes, got %d",
				ErrInvalidEncoding, secLenCompressed, len(sec))
		}
		x := new(big.Int).SetBytes(sec[1:])
		y, err := gen.YFromX(x, sec[0] == secTagOdd)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		}
		pub.X, pub.Y = x, y
		compressed = true

	case secTagUncompressed:
		if len(sec) != secLenUncompressed {
			return nil, fmt.Errorf("%w: uncompressed form must be %d bytes, got %d",
				ErrInvalidEncoding, secLenUncompressed, len(sec))
		}
		pub.X = new(big.Int).SetBytes(sec[1 : 1+coordSize])
		pub.Y = new(big.Int).SetBytes(sec[1+coordSize:])
		compressed = false

	default:
		return nil, fmt.Errorf("%w: unknown tag byte 0x%02x", ErrInvalidEncoding, sec[0])
	}

	k, err := New(nil, &pub, gen, profile, compressed)
	if err != nil {
		// 解码语境下成员检测失败统一报告为编码错误
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return k, nil
}

// FromSECHex 从 SEC 十六进制文本创建公钥
func FromSECHex(text string, gen cryptointf.Generator, profile cryptointf.NetworkProfile) (*Key, error) {
	sec, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return FromSEC(sec, gen, profile)
}

// FromWIF 从 WIF 导出文本恢复私钥
//
// 33 字节且末尾为 0x01 的载荷视为压缩密钥，32 字节为未压缩。
func FromWIF(text string, gen cryptointf.Generator, profile cryptointf.NetworkProfile) (*Key, error) {
	blob, err := profile.DecodeWIF(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	compressed := false
	switch {
	case len(blob) == coordSize:
	case len(blob) == coordSize+1 && blob[coordSize] == 0x01:
		compressed = true
	default:
		return nil, fmt.Errorf("%w: bad private key payload", ErrInvalidEncoding)
	}

	secret := new(big.Int).SetBytes(blob[:coordSize])
	return New(secret, nil, gen, profile, compressed)
}

// SEC 返回公钥的 SEC 字节编码
//
// 压缩：标签（y 偶 0x02 / y 奇 0x03）+ 32字节大端 x。
// 未压缩：0x04 + 32字节大端 x + 32字节大端 y。
// 仅操作已验证的状态，不会失败。
func (k *Key) SEC(compressed ...bool) []byte {
	if k.effCompressed(compressed) {
		out := make([]byte, secLenCompressed)
		out[0] = secTagEven
		if k.pubY.Bit(0) == 1 {
			out[0] = secTagOdd
		}
		k.pubX.FillBytes(out[1:])
		return out
	}

	out := make([]byte, secLenUncompressed)
	out[0] = secTagUncompressed
	k.pubX.FillBytes(out[1 : 1+coordSize])
	k.pubY.FillBytes(out[1+coordSize:])
	return out
}

// SECHex 返回 SEC 编码的十六进制文本（经 NetworkProfile 标注）
func (k *Key) SECHex(compressed ...bool) string {
	return k.network.SECHexForBlob(k.SEC(compressed...))
}

// WIF 返回私钥的 WIF 导出文本
//
// 公钥没有可导出的私钥，返回 ("", false)；这是约定行为而非错误。
// 载荷为 32 字节大端标量，压缩风格在末尾追加一个 0x01 标记字节。
func (k *Key) WIF(compressed ...bool) (string, bool) {
	if k.secret == nil {
		return "", false
	}

	blob := make([]byte, coordSize, coordSize+1)
	k.secret.FillBytes(blob)
	if k.effCompressed(compressed) {
		blob = append(blob, 0x01)
	}
	return k.network.WIFForBlob(blob), true
}

// Hash160 返回公钥 SEC 编码的 Hash160 摘要
//
// 每种压缩风格的结果独立缓存：首次调用计算并存储，后续调用
// 返回缓存副本。缓存只是优化，除成本外外部不可观察。
func (k *Key) Hash160(compressed ...bool) []byte {
	eff := k.effCompressed(compressed)

	k.cacheMu.Lock()
	slot := &k.h160Uncompressed
	if eff {
		slot = &k.h160Compressed
	}
	if *slot == nil {
		*slot = hash.Hash160(k.SEC(eff))
	}
	cached := *slot
	k.cacheMu.Unlock()

	// 返回副本，防止调用方篡改缓存
	out := make([]byte, len(cached))
	copy(out, cached)
	return out
}

// Fingerprint 返回 Hash160 的前4字节，用作短密钥标识
func (k *Key) Fingerprint(compressed ...bool) []byte {
	return k.Hash160(compressed...)[:FingerprintSize]
}

// Address 返回公钥摘要经 NetworkProfile 编码的地址文本
func (k *Key) Address(compressed ...bool) string {
	return k.network.AddressForHash160(k.Hash160(compressed...))
}

// Sign 对 32 字节消息摘要做确定性签名，返回 DER 编码
//
// 公钥无法签名，返回 ErrNotPrivate（显式失败而非静默忽略）。
// 摘要按大端整数解释后交给 Generator 的确定性签名原语。
func (k *Key) Sign(digest []byte) ([]byte, error) {
	if k.secret == nil {
		return nil, ErrNotPrivate
	}
	if len(digest) != DigestSize {
		return nil, ErrInvalidDigest
	}

	r, s := k.generator.Sign(k.secret, new(big.Int).SetBytes(digest))
	return dersig.Encode(r, s), nil
}

// Verify 验证 DER 编码签名是否对 32 字节摘要有效
//
// 私钥与公钥均可验签（只需要公钥点）。签名有效性本身就是被
// 询问的命题，因此任何畸形输入只返回 false，永不报错。
func (k *Key) Verify(digest, sig []byte) bool {
	if len(digest) != DigestSize {
		return false
	}
	r, s, err := dersig.Decode(sig)
	if err != nil {
		return false
	}
	return k.generator.Verify(k.pubX, k.pubY, new(big.Int).SetBytes(digest), r, s)
}
