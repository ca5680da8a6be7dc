package network

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// 私钥 k=1 的已知编码向量（Bitcoin 主网）
const (
	wifUncompressedOne = "5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAnchuDf"
	wifCompressedOne   = "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn"
	addressOne         = "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"
	hash160One         = "751e76e8199196d454941c45d1b3a323f1433bd6"
)

func TestWIFForBlob_KnownVectors(t *testing.T) {
	// 32字节标量 1
	blob := make([]byte, 32)
	blob[31] = 0x01

	require.Equal(t, wifUncompressedOne, BitcoinMainNet.WIFForBlob(blob))

	// 压缩标记：末尾追加 0x01
	require.Equal(t, wifCompressedOne, BitcoinMainNet.WIFForBlob(append(blob, 0x01)))
}

func TestDecodeWIF_RoundTrip(t *testing.T) {
	for _, p := range []*Params{WESMainNet, BitcoinMainNet, BitcoinTestNet3} {
		blob := make([]byte, 33)
		blob[31] = 0x7F
		blob[32] = 0x01

		text := p.WIFForBlob(blob)
		got, err := p.DecodeWIF(text)
		require.NoError(t, err, p.Name())
		require.Equal(t, blob, got)
	}
}

func TestDecodeWIF_WrongNetwork(t *testing.T) {
	blob := make([]byte, 32)
	blob[31] = 0x01

	text := BitcoinMainNet.WIFForBlob(blob)

	// 测试网配置解码主网 WIF：版本字节不匹配
	_, err := BitcoinTestNet3.DecodeWIF(text)
	require.ErrorIs(t, err, ErrInvalidVersion)
}

func TestAddressForHash160_KnownVector(t *testing.T) {
	h160, err := hex.DecodeString(hash160One)
	require.NoError(t, err)

	require.Equal(t, addressOne, BitcoinMainNet.AddressForHash160(h160))

	// WES 地址使用自己的版本字节，编码结果不同但可往返
	wesAddr := WESMainNet.AddressForHash160(h160)
	require.NotEqual(t, addressOne, wesAddr)

	got, err := WESMainNet.DecodeAddress(wesAddr)
	require.NoError(t, err)
	require.Equal(t, h160, got)
	require.NoError(t, WESMainNet.ValidateAddress(wesAddr))
}

func TestDecodeAddress_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"garbage", "not-base58-0OIl"},
		{"truncated", "1Bg"},
		{"corrupted", addressOne[:len(addressOne)-1] + "J"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BitcoinMainNet.DecodeAddress(tc.in)
			require.Error(t, err)
		})
	}
}

func TestSECHexForBlob(t *testing.T) {
	sec := []byte{0x02, 0xAB, 0xCD}
	require.Equal(t, "02abcd", BitcoinMainNet.SECHexForBlob(sec))
}
