package contracts_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/patentdex/patentdex/internal/contracts"
	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/gateway"
	"github.com/patentdex/patentdex/internal/mocks"
)

var registryAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

func TestRegistry_PatentIDFromReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	registry := contracts.NewRegistry(mocks.NewMockGateway(ctrl), registryAddr)

	receipt := &types.Receipt{
		TxHash: eventTxHash,
		Logs: []*types.Log{
			{Topics: []common.Hash{common.HexToHash("0x1")}}, // unrelated log
			{Topics: []common.Hash{contracts.PatentRegisteredSig, uintTopic(42), addressTopic(eventAccount)}},
		},
	}

	patentID, err := registry.PatentIDFromReceipt(receipt)
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), patentID)
}

func TestRegistry_PatentIDFromReceipt_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	registry := contracts.NewRegistry(mocks.NewMockGateway(ctrl), registryAddr)

	_, err := registry.PatentIDFromReceipt(&types.Receipt{TxHash: eventTxHash})
	assert.Error(t, err)
}

func TestRegistry_GetTotalPatents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mocks.NewMockGateway(ctrl)
	registry := contracts.NewRegistry(gw, registryAddr)

	gw.EXPECT().Call(gomock.Any(), registryAddr, gomock.Any()).Return(word(big.NewInt(3)), nil)

	total, err := registry.GetTotalPatents(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, uint64(3), total)
}

func TestRegistry_RegisterPatent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mocks.NewMockGateway(ctrl)
	registry := contracts.NewRegistry(gw, registryAddr)

	pending := gateway.PendingTx{Hash: eventTxHash}
	gw.EXPECT().
		Send(gomock.Any(), registryAddr, gomock.Any(), nil, uint64(domain.GasLimitRegistration)).
		Return(pending, nil)

	got, err := registry.RegisterPatent(context.Background(), "Quantum Widget", "QmMetaCID", "US1234567")
	assert.NoError(t, err)
	assert.Equal(t, pending, got)
}

func TestFactory_TokenAddressFromReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	factory := contracts.NewFactory(mocks.NewMockGateway(ctrl), registryAddr)

	receipt := &types.Receipt{
		TxHash: eventTxHash,
		Logs: []*types.Log{
			{
				Topics: []common.Hash{contracts.PatentTokenCreatedSig, uintTopic(7)},
				Data:   word(new(big.Int).SetBytes(eventTokenAddr.Bytes())),
			},
		},
	}

	addr, err := factory.TokenAddressFromReceipt(receipt)
	assert.NoError(t, err)
	assert.Equal(t, eventTokenAddr, addr)
}

func TestFactory_GetPatentToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mocks.NewMockGateway(ctrl)
	factory := contracts.NewFactory(gw, registryAddr)

	gw.EXPECT().Call(gomock.Any(), registryAddr, gomock.Any()).
		Return(word(new(big.Int).SetBytes(eventTokenAddr.Bytes())), nil)

	addr, err := factory.GetPatentToken(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, eventTokenAddr, addr)

	// The zero address means the patent has not been tokenized
	gw.EXPECT().Call(gomock.Any(), registryAddr, gomock.Any()).Return(word(big.NewInt(0)), nil)
	addr, err = factory.GetPatentToken(context.Background(), 8)
	assert.NoError(t, err)
	assert.Equal(t, common.Address{}, addr)
}
