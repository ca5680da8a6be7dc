// keycore 密钥生成与检查工具
//
// 围绕 keycore 库的薄命令行外壳，密钥语义全部来自库本身。
package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"os"

	"github.com/weisyn/keycore/pkg/crypto/key"
	"github.com/weisyn/keycore/pkg/crypto/network"
	"github.com/weisyn/keycore/pkg/crypto/secp256k1"
	cryptointf "github.com/weisyn/keycore/pkg/interfaces/crypto"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("keycore 密钥工具")
		fmt.Println("用法:")
		fmt.Println("  keygen generate <count>   - 生成指定数量的密钥对")
		fmt.Println("  keygen inspect <wif|hex>  - 检查 WIF 私钥或 SEC 十六进制公钥")
		fmt.Println("")
		fmt.Println("示例:")
		fmt.Println("  keygen generate 5")
		fmt.Println("  keygen inspect KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn")
		return
	}

	gen := secp256k1.NewGenerator()
	net := network.WESMainNet

	switch os.Args[1] {
	case "generate":
		count := 1
		if len(os.Args) >= 3 {
			fmt.Sscanf(os.Args[2], "%d", &count)
		}
		generateKeys(gen, net, count)
	case "inspect":
		if len(os.Args) < 3 {
			fmt.Println("inspect 需要一个 WIF 或 SEC 十六进制参数")
			os.Exit(1)
		}
		inspect(gen, net, os.Args[2])
	default:
		fmt.Printf("未知命令: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func generateKeys(gen cryptointf.Generator, net cryptointf.NetworkProfile, count int) {
	fmt.Printf("🔑 生成 %d 个密钥对 (网络: %s)\n", count, net.Name())
	fmt.Println("====================")

	for i := 0; i < count; i++ {
		k, err := key.Generate(rand.Reader, gen, net)
		if err != nil {
			log.Fatalf("生成私钥失败: %v", err)
		}

		wif, _ := k.WIF()
		fmt.Printf("密钥对 %d:\n", i+1)
		fmt.Printf("  私钥(WIF): %s\n", wif)
		fmt.Printf("  公钥(SEC): %s\n", k.SECHex())
		fmt.Printf("  指纹:      %x\n", k.Fingerprint())
		fmt.Printf("  地址:      %s\n", k.Address())
		fmt.Println()
	}
}

func inspect(gen cryptointf.Generator, net cryptointf.NetworkProfile, text string) {
	k, err := key.FromWIF(text, gen, net)
	if err != nil {
		// 不是本网络的 WIF，再按 SEC 十六进制解析
		k, err = key.FromSECHex(text, gen, net)
		if err != nil {
			log.Fatalf("无法解析输入: %v", err)
		}
	}

	fmt.Printf("🔎 密钥信息 (网络: %s)\n", net.Name())
	fmt.Println("====================")
	if k.IsPrivate() {
		wifC, _ := k.WIF(true)
		wifU, _ := k.WIF(false)
		fmt.Printf("  类型:            私钥\n")
		fmt.Printf("  WIF(压缩):       %s\n", wifC)
		fmt.Printf("  WIF(未压缩):     %s\n", wifU)
	} else {
		fmt.Printf("  类型:            公钥\n")
	}
	fmt.Printf("  公钥(压缩):      %s\n", k.SECHex(true))
	fmt.Printf("  公钥(未压缩):    %s\n", k.SECHex(false))
	fmt.Printf("  Hash160(压缩):   %x\n", k.Hash160(true))
	fmt.Printf("  Hash160(未压缩): %x\n", k.Hash160(false))
	fmt.Printf("  地址(压缩):      %s\n", k.Address(true))
	fmt.Printf("  地址(未压缩):    %s\n", k.Address(false))
}
