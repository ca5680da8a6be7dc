// Package crypto 提供 keycore 的能力接口定义
//
// 🔑 **能力抽象 (Capability Interfaces)**
//
// 本文件定义了密钥核心所依赖的三个外部能力接口：
// - Generator：椭圆曲线群能力（阶、基点、标量乘法、曲线成员检测、签名/验签原语）
// - NetworkProfile：网络编码规则能力（版本字节、校验和、Base58Check 文本编码）
// - SignatureCodec：签名序列化能力（(r,s) 点对与 DER 字节流的互相转换）
//
// 🏗️ **设计原则**
// - 显式注入：每个 Key 在构造时显式携带 Generator 与 NetworkProfile 引用，
//   不存在进程级的隐式默认曲线或默认网络
// - 共享只读：能力实例在构造后只读，可被任意数量的 Key 并发共享
// - 同步本地：所有能力操作同步完成，不涉及 I/O、网络或取消语义
//
// 🔗 **组件关系**
// - Generator：由 pkg/crypto/secp256k1 提供默认实现
// - NetworkProfile：由 pkg/crypto/network 提供默认实现
// - SignatureCodec：由 pkg/crypto/dersig 提供默认实现
package crypto

import "math/big"

// Generator 定义椭圆曲线群能力接口
//
// 抽象一条具体曲线（如 secp256k1）的群运算，密钥核心只通过本接口
// 访问曲线，不直接依赖任何曲线实现。
//
// 🎯 **约定**：
// - 所有坐标与标量均为大端非负整数
// - 实现不得修改调用方传入的 big.Int
// - 返回的 big.Int 归调用方所有，实现不保留引用
type Generator interface {
	// Order 返回群的阶 n（基点的阶）
	Order() *big.Int

	// BasePoint 返回基点 G 的仿射坐标
	BasePoint() (x, y *big.Int)

	// ScalarBaseMult 计算 k*G
	//
	// 这是私钥派生公钥的唯一入口。k 必须已通过 [1, n) 范围验证。
	ScalarBaseMult(k *big.Int) (x, y *big.Int)

	// ScalarMult 计算 k*(x, y)
	ScalarMult(x, y *big.Int, k *big.Int) (rx, ry *big.Int)

	// ContainsPoint 检测 (x, y) 是否为曲线上的有效点
	//
	// 无穷远点（零点哨兵）与任何不满足曲线方程的坐标对均返回 false。
	ContainsPoint(x, y *big.Int) bool

	// YFromX 由 x 坐标和奇偶标志恢复 y 坐标（压缩公钥解码用）
	//
	// x 不在域内或曲线方程无解时返回错误。
	YFromX(x *big.Int, odd bool) (*big.Int, error)

	// Sign 使用确定性 ECDSA（RFC6979）对消息整数签名
	//
	// secret 必须在 [1, n) 范围内，digest 为消息摘要的大端整数解释。
	Sign(secret, digest *big.Int) (r, s *big.Int)

	// Verify 验证 (r, s) 是否为公钥点 (x, y) 对 digest 的有效签名
	Verify(x, y *big.Int, digest *big.Int, r, s *big.Int) bool
}

// NetworkProfile 定义目标网络的文本编码规则能力接口
//
// 提供私钥导出（WIF 风格）、地址和公钥十六进制文本的编码规则。
// 版本字节与校验和约定由具体网络实现决定。
type NetworkProfile interface {
	// Name 返回网络名称（诊断用）
	Name() string

	// WIFForBlob 将私钥字节串（32字节标量 [+压缩标记]）编码为导出文本
	WIFForBlob(blob []byte) string

	// AddressForHash160 将 20 字节公钥摘要编码为地址文本
	AddressForHash160(h160 []byte) string

	// SECHexForBlob 将 SEC 公钥字节串标注为十六进制文本
	SECHexForBlob(sec []byte) string

	// DecodeWIF 解码私钥导出文本，返回原始字节串（32 或 33 字节）
	//
	// 校验和或版本字节不匹配时返回错误。
	DecodeWIF(text string) ([]byte, error)

	// DecodeAddress 解码地址文本，返回 20 字节公钥摘要
	DecodeAddress(text string) ([]byte, error)
}

// SignatureCodec 定义签名序列化能力接口
//
// 将 (r, s) 签名点对编码为自定界字节格式（DER），以及反向解码。
type SignatureCodec interface {
	// Encode 将 (r, s) 编码为 DER 字节流
	Encode(r, s *big.Int) []byte

	// Decode 从 DER 字节流解码 (r, s)
	//
	// 任何格式错误均返回错误，不做部分解析。
	Decode(sig []byte) (r, s *big.Int, err error)
}
