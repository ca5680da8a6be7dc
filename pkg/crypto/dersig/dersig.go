// Package dersig 提供签名序列化能力实现
//
// 将 ECDSA 签名点对 (r, s) 与 DER 字节流互相转换，
// 底层委托给 decred/dcrec 的严格 DER 实现，本包不手写编码规则。
package dersig

import (
	"errors"
	"fmt"
	"math/big"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	cryptointf "github.com/weisyn/keycore/pkg/interfaces/crypto"
)

// ErrMalformed DER 字节流格式非法
var ErrMalformed = errors.New("dersig: malformed DER signature")

// Encode 将 (r, s) 编码为 DER 字节流
//
// r、s 必须为有效签名分量（[1, n) 范围内），编码本身不会失败。
func Encode(r, s *big.Int) []byte {
	var sr, ss secp.ModNScalar
	sr.SetByteSlice(r.FillBytes(make([]byte, 32)))
	ss.SetByteSlice(s.FillBytes(make([]byte, 32)))
	return secpecdsa.NewSignature(&sr, &ss).Serialize()
}

// Decode 从 DER 字节流解码 (r, s)
func Decode(sig []byte) (r, s *big.Int, err error) {
	parsed, err := secpecdsa.ParseDERSignature(sig)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	sr, ss := parsed.R(), parsed.S()
	rb, sb := sr.Bytes(), ss.Bytes()
	return new(big.Int).SetBytes(rb[:]), new(big.Int).SetBytes(sb[:]), nil
}

// Codec 以值类型暴露包级编解码函数，满足 SignatureCodec 接口
type Codec struct{}

// 确保 Codec 实现了 cryptointf.SignatureCodec 接口
var _ cryptointf.SignatureCodec = Codec{}

// Encode 实现 cryptointf.SignatureCodec
func (Codec) Encode(r, s *big.Int) []byte { return Encode(r, s) }

// Decode 实现 cryptointf.SignatureCodec
func (Codec) Decode(sig []byte) (r, s *big.Int, err error) { return Decode(sig) }
