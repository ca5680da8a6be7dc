// Package secp256k1 提供 secp256k1 椭圆曲线群能力实现
//
// 🎯 **设计目的**：
// 封装 btcd/btcec 与 decred/dcrec 的 secp256k1 实现，对外提供统一的
// Generator 能力接口。通过封装层隔离第三方库依赖，便于未来替换底层实现。
//
// 🔒 **安全原则**：
// - 使用经过验证的密码学库（btcd 是 Bitcoin Core 的 Go 实现）
// - 签名采用确定性 ECDSA（RFC6979），相同输入产生相同签名
// - 本包不实现任何曲线数学，所有群运算委托给底层库
package secp256k1

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	cryptointf "github.com/weisyn/keycore/pkg/interfaces/crypto"
)

// 错误定义
var (
	// ErrInvalidX 压缩公钥的 x 坐标不在域内或无对应曲线点
	ErrInvalidX = errors.New("secp256k1: no curve point for x coordinate")
)

// scalarSize 标量与坐标的固定编码宽度（32字节）
const scalarSize = 32

// Generator 封装 secp256k1 曲线群
//
// 实例无内部状态，可被任意数量的 Key 并发共享。
type Generator struct {
	curve *btcec.KoblitzCurve
}

// 确保 Generator 实现了 cryptointf.Generator 接口
var _ cryptointf.Generator = (*Generator)(nil)

// NewGenerator 创建 secp256k1 群实例
func NewGenerator() *Generator {
	return &Generator{curve: btcec.S256()}
}

// Order 返回群的阶 n
func (g *Generator) Order() *big.Int {
	return new(big.Int).Set(g.curve.Params().N)
}

// BasePoint 返回基点 G 的仿射坐标
func (g *Generator) BasePoint() (x, y *big.Int) {
	params := g.curve.Params()
	return new(big.Int).Set(params.Gx), new(big.Int).Set(params.Gy)
}

// ScalarBaseMult 计算 k*G
func (g *Generator) ScalarBaseMult(k *big.Int) (x, y *big.Int) {
	return g.curve.ScalarBaseMult(k.Bytes())
}

// ScalarMult 计算 k*(x, y)
func (g *Generator) ScalarMult(x, y *big.Int, k *big.Int) (rx, ry *big.Int) {
	return g.curve.ScalarMult(x, y, k.Bytes())
}

// ContainsPoint 检测 (x, y) 是否为曲线上的有效点
//
// 无穷远点（nil 坐标或零点哨兵）视为无效。
func (g *Generator) ContainsPoint(x, y *big.Int) bool {
	if x == nil || y == nil {
		return false
	}
	// 零点哨兵表示无穷远点
	if x.Sign() == 0 && y.Sign() == 0 {
		return false
	}
	// 坐标必须在域 [0, P) 内
	p := g.curve.Params().P
	if x.Sign() < 0 || y.Sign() < 0 || x.Cmp(p) >= 0 || y.Cmp(p) >= 0 {
		return false
	}
	return g.curve.IsOnCurve(x, y)
}

// YFromX 由 x 坐标和奇偶标志恢复 y 坐标
//
// 求解曲线方程 y² = x³ + 7 (mod p)，并取奇偶性匹配的根。
func (g *Generator) YFromX(x *big.Int, odd bool) (*big.Int, error) {
	p := g.curve.Params().P
	if x.Sign() < 0 || x.Cmp(p) >= 0 {
		return nil, fmt.Errorf("%w: x out of field range", ErrInvalidX)
	}

	// y² = x³ + 7 (mod p)
	y2 := new(big.Int).Mul(x, x)
	y2.Mul(y2, x)
	y2.Add(y2, g.curve.Params().B)
	y2.Mod(y2, p)

	y := new(big.Int).ModSqrt(y2, p)
	if y == nil {
		return nil, ErrInvalidX
	}

	// 取奇偶性匹配的根
	if (y.Bit(0) == 1) != odd {
		y.Sub(p, y)
	}
	return y, nil
}

// Sign 使用确定性 ECDSA（RFC6979）对消息整数签名
//
// secret 必须已通过 [1, n) 范围验证，digest 为 32 字节摘要的大端整数解释。
func (g *Generator) Sign(secret, digest *big.Int) (r, s *big.Int) {
	priv, _ := btcec.PrivKeyFromBytes(secret.FillBytes(make([]byte, scalarSize)))

	// 紧凑签名格式：1字节头 + r(32) + s(32)
	compact := btcecdsa.SignCompact(priv, digest.FillBytes(make([]byte, scalarSize)), true)

	r = new(big.Int).SetBytes(compact[1 : 1+scalarSize])
	s = new(big.Int).SetBytes(compact[1+scalarSize:])
	return r, s
}

// Verify 验证 (r, s) 是否为公钥点 (x, y) 对 digest 的有效签名
func (g *Generator) Verify(x, y *big.Int, digest *big.Int, r, s *big.Int) bool {
	if !g.ContainsPoint(x, y) {
		return false
	}
	// r、s 必须在 [1, n) 范围内
	n := g.curve.Params().N
	if r.Sign() <= 0 || s.Sign() <= 0 || r.Cmp(n) >= 0 || s.Cmp(n) >= 0 {
		return false
	}

	var fx, fy secp.FieldVal
	if overflow := fx.SetByteSlice(x.FillBytes(make([]byte, scalarSize))); overflow {
		return false
	}
	if overflow := fy.SetByteSlice(y.FillBytes(make([]byte, scalarSize))); overflow {
		return false
	}
	pub := secp.NewPublicKey(&fx, &fy)

	var sr, ss secp.ModNScalar
	sr.SetByteSlice(r.FillBytes(make([]byte, scalarSize)))
	ss.SetByteSlice(s.FillBytes(make([]byte, scalarSize)))

	return secpecdsa.NewSignature(&sr, &ss).Verify(digest.FillBytes(make([]byte, scalarSize)), pub)
}
