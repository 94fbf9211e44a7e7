// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vmabi/codec/common"
)

const erc20JSON = `[
  {"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"balanceOf","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]},
  {"type":"error","name":"InsufficientBalance","inputs":[{"name":"available","type":"uint256"},{"name":"required","type":"uint256"}]}
]`

func TestFunctionSelectorSeedScenario(t *testing.T) {
	// transfer(address,uint256) is the canonical ERC-20 selector.
	reg, err := JSON(strings.NewReader(erc20JSON))
	require.NoError(t, err)
	id, err := reg.FunctionSelector("transfer")
	require.NoError(t, err)
	require.Equal(t, "0xa9059cbb", common.Encode(id[:]))
}

func TestEventTopicSeedScenario(t *testing.T) {
	reg, err := JSON(strings.NewReader(erc20JSON))
	require.NoError(t, err)
	topic, err := reg.EventTopic("Transfer")
	require.NoError(t, err)
	require.Equal(t, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", topic.Hex())
}

func TestEncodeDecodeFunctionRoundTrip(t *testing.T) {
	reg, err := JSON(strings.NewReader(erc20JSON))
	require.NoError(t, err)

	to := common.HexToAddress("0x00000000000000000000000000000000000abc")
	data, err := reg.EncodeFunction("transfer", NewAddressValue(to), NewUintValue(big.NewInt(1000)))
	require.NoError(t, err)
	require.Len(t, data, 4+64)

	fn, values, err := reg.DecodeFunction("transfer", data)
	require.NoError(t, err)
	require.Equal(t, "transfer", fn.Name)
	require.Equal(t, to, values[0].Addr)
	require.Equal(t, big.NewInt(1000), values[1].Num)
}

func TestDecodeFunctionUnknownName(t *testing.T) {
	reg, err := JSON(strings.NewReader(erc20JSON))
	require.NoError(t, err)
	_, _, err = reg.DecodeFunction("noSuchFunction", []byte{0xde, 0xad, 0xbe, 0xef})
	require.ErrorIs(t, err, ErrUnknownFunction)
}

func TestDecodeFunctionSelectorMismatch(t *testing.T) {
	reg, err := JSON(strings.NewReader(erc20JSON))
	require.NoError(t, err)

	owner := common.HexToAddress("0x00000000000000000000000000000000000abc")
	data, err := reg.EncodeFunction("balanceOf", NewAddressValue(owner))
	require.NoError(t, err)

	// data is a valid call, just not to "transfer".
	_, _, err = reg.DecodeFunction("transfer", data)
	require.ErrorIs(t, err, ErrSelectorMismatch)
}

func TestDecodeFunctionBySelector(t *testing.T) {
	reg, err := JSON(strings.NewReader(erc20JSON))
	require.NoError(t, err)

	to := common.HexToAddress("0x00000000000000000000000000000000000abc")
	data, err := reg.EncodeFunction("transfer", NewAddressValue(to), NewUintValue(big.NewInt(1000)))
	require.NoError(t, err)

	fn, values, err := reg.DecodeFunctionBySelector(data)
	require.NoError(t, err)
	require.Equal(t, "transfer", fn.Name)
	require.Equal(t, to, values[0].Addr)

	_, _, err = reg.DecodeFunctionBySelector([]byte{0xde, 0xad, 0xbe, 0xef})
	require.ErrorIs(t, err, ErrUnknownFunction)
}

func TestDecodeLogRoundTrip(t *testing.T) {
	reg, err := JSON(strings.NewReader(erc20JSON))
	require.NoError(t, err)

	from := common.HexToAddress("0x1111111111111111111111111111111111111111")
	to := common.HexToAddress("0x2222222222222222222222222222222222222222")

	ev := reg.Events["Transfer"]
	topics := []common.Hash{
		ev.Topic,
		common.BytesToHash(from.Bytes()),
		common.BytesToHash(to.Bytes()),
	}
	data, err := ev.Inputs.NonIndexed().Pack(NewUintValue(big.NewInt(5000)))
	require.NoError(t, err)

	gotEv, values, err := reg.DecodeLog(topics, data)
	require.NoError(t, err)
	require.Equal(t, "Transfer", gotEv.Name)
	require.Equal(t, from, values["from"].Addr)
	require.Equal(t, to, values["to"].Addr)
	require.Equal(t, big.NewInt(5000), values["value"].Num)
}

func TestDecodeLogTopicCountMismatch(t *testing.T) {
	reg, err := JSON(strings.NewReader(erc20JSON))
	require.NoError(t, err)
	ev := reg.Events["Transfer"]
	_, err = DecodeLog(ev, []common.Hash{ev.Topic}, nil)
	require.ErrorIs(t, err, ErrTopicCount)
}

func TestCustomErrorUnpack(t *testing.T) {
	reg, err := JSON(strings.NewReader(erc20JSON))
	require.NoError(t, err)
	er, ok := reg.Errors["InsufficientBalance"]
	require.True(t, ok)

	body, err := er.Inputs.Pack(NewUintValue(big.NewInt(10)), NewUintValue(big.NewInt(100)))
	require.NoError(t, err)
	id := er.ID()
	payload := append(id[:], body...)

	values, err := er.Unpack(payload)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(10), values["available"].Num)
	require.Equal(t, big.NewInt(100), values["required"].Num)
}

func TestNameConflictResolution(t *testing.T) {
	overloaded := `[
	  {"type":"function","name":"foo","inputs":[{"name":"a","type":"uint256"}]},
	  {"type":"function","name":"foo","inputs":[{"name":"a","type":"string"}]}
	]`
	reg, err := JSON(strings.NewReader(overloaded))
	require.NoError(t, err)
	require.Len(t, reg.Functions, 2)
	_, ok := reg.Functions["foo"]
	require.True(t, ok)
	_, ok = reg.Functions["foo0"]
	require.True(t, ok)
}

func TestDecodeLogUnnamedFieldsDoNotCollide(t *testing.T) {
	// One unnamed indexed argument and one unnamed non-indexed argument:
	// naive per-partition numbering would give both "field0".
	unnamed := `[
	  {"type":"event","name":"Anon","anonymous":false,"inputs":[
	    {"name":"","type":"address","indexed":true},
	    {"name":"","type":"uint256","indexed":false}
	  ]}
	]`
	reg, err := JSON(strings.NewReader(unnamed))
	require.NoError(t, err)
	ev := reg.Events["Anon"]

	addr := common.HexToAddress("0x3333333333333333333333333333333333333333")
	topics := []common.Hash{ev.Topic, common.BytesToHash(addr.Bytes())}
	data, err := ev.Inputs.NonIndexed().Pack(NewUintValue(big.NewInt(42)))
	require.NoError(t, err)

	_, values, err := reg.DecodeLog(topics, data)
	require.NoError(t, err)
	require.Len(t, values, 2)
	require.Equal(t, addr, values["field0"].Addr)
	require.Equal(t, big.NewInt(42), values["field1"].Num)
}

func TestReceiptHelpersSkipUnknownLogs(t *testing.T) {
	reg, err := JSON(strings.NewReader(erc20JSON))
	require.NoError(t, err)
	ev := reg.Events["Transfer"]

	from := common.HexToAddress("0x1111111111111111111111111111111111111111")
	to := common.HexToAddress("0x2222222222222222222222222222222222222222")
	data, err := ev.Inputs.NonIndexed().Pack(NewUintValue(big.NewInt(1)))
	require.NoError(t, err)

	receipt := Receipt{Logs: []Log{
		{Topics: []common.Hash{common.BytesToHash([]byte{0xbe, 0xef})}, Data: nil},
		{Topics: []common.Hash{ev.Topic, common.BytesToHash(from.Bytes()), common.BytesToHash(to.Bytes())}, Data: data},
	}}
	decoded, err := DecodeReceiptLogs(reg, receipt)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.Equal(t, "Transfer", decoded[0].Event.Name)
}
