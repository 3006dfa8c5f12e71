package contracts_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/patentdex/patentdex/internal/contracts"
	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/gateway"
	"github.com/patentdex/patentdex/internal/mocks"
)

var stakingAddr = common.HexToAddress("0xCf7Ed3AccA5a467e9e704C703E8D87F634fB0Fc9")

// stakeAmount converts whole tokens into base units.
func stakeAmount(tokens int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(tokens), big.NewInt(1e18))
}

func stakeSelector(signature string) []byte {
	return crypto.Keccak256([]byte(signature))[:4]
}

func TestStaking_Stake_RejectsBelowMinimum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	staking := contracts.NewStaking(mocks.NewMockGateway(ctrl), stakingAddr)

	// No transaction is sent for an undersized stake
	_, err := staking.Stake(context.Background(), eventTokenAddr, stakeAmount(999), "", "")
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// A raw base-unit amount is far below 1000 whole tokens
	_, err = staking.Stake(context.Background(), eventTokenAddr, big.NewInt(1500), "", "")
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	_, err = staking.Stake(context.Background(), eventTokenAddr, nil, "", "")
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestStaking_Stake_AnnotatedVariant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mocks.NewMockGateway(ctrl)
	staking := contracts.NewStaking(gw, stakingAddr)

	pending := gateway.PendingTx{Hash: eventTxHash}
	annotated := stakeSelector("stake(address,uint256,string,string)")
	gomock.InOrder(
		// The signature is probed with a read before anything is sent
		gw.EXPECT().Call(gomock.Any(), stakingAddr, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ common.Address, data []byte) ([]byte, error) {
				assert.Equal(t, annotated, data[:4])
				return []byte{}, nil
			}),
		gw.EXPECT().Send(gomock.Any(), stakingAddr, gomock.Any(), nil, uint64(domain.GasLimitTrade)).
			DoAndReturn(func(_ context.Context, _ common.Address, data []byte, _ *big.Int, _ uint64) (gateway.PendingTx, error) {
				assert.Equal(t, annotated, data[:4])
				return pending, nil
			}),
	)

	got, err := staking.Stake(context.Background(), eventTokenAddr, stakeAmount(1000), "research", "ipfs://meta")
	assert.NoError(t, err)
	assert.Equal(t, pending, got)
	assert.Equal(t, contracts.StakeVariantAnnotated, staking.Variant())

	// The probe outcome is remembered; the next stake is sent without one
	gw.EXPECT().Send(gomock.Any(), stakingAddr, gomock.Any(), nil, uint64(domain.GasLimitTrade)).
		Return(pending, nil)
	_, err = staking.Stake(context.Background(), eventTokenAddr, stakeAmount(2000), "", "")
	assert.NoError(t, err)
}

func TestStaking_Stake_PlainFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mocks.NewMockGateway(ctrl)
	staking := contracts.NewStaking(gw, stakingAddr)

	pending := gateway.PendingTx{Hash: eventTxHash}
	plain := stakeSelector("stake(address,uint256)")
	gomock.InOrder(
		// A vault without the annotated signature reverts the probe; the
		// broadcast must then carry the plain selector
		gw.EXPECT().Call(gomock.Any(), stakingAddr, gomock.Any()).
			Return(nil, revertedErr()),
		gw.EXPECT().Send(gomock.Any(), stakingAddr, gomock.Any(), nil, uint64(domain.GasLimitTrade)).
			DoAndReturn(func(_ context.Context, _ common.Address, data []byte, _ *big.Int, _ uint64) (gateway.PendingTx, error) {
				assert.Equal(t, plain, data[:4])
				return pending, nil
			}),
	)

	got, err := staking.Stake(context.Background(), eventTokenAddr, stakeAmount(2000), "research", "ipfs://meta")
	assert.NoError(t, err)
	assert.Equal(t, pending, got)
	assert.Equal(t, contracts.StakeVariantPlain, staking.Variant())

	// The probe outcome is remembered; later stakes go straight to the
	// plain signature
	gw.EXPECT().Send(gomock.Any(), stakingAddr, gomock.Any(), nil, uint64(domain.GasLimitTrade)).
		DoAndReturn(func(_ context.Context, _ common.Address, data []byte, _ *big.Int, _ uint64) (gateway.PendingTx, error) {
			assert.Equal(t, plain, data[:4])
			return pending, nil
		})
	_, err = staking.Stake(context.Background(), eventTokenAddr, stakeAmount(3000), "", "")
	assert.NoError(t, err)
}

func TestStaking_NFTTokenIDFromReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	staking := contracts.NewStaking(mocks.NewMockGateway(ctrl), stakingAddr)

	receipt := &types.Receipt{
		TxHash: eventTxHash,
		Logs: []*types.Log{
			{
				Topics: []common.Hash{contracts.StakedSig, addressTopic(eventAccount), uintTopic(3)},
				Data:   append(word(big.NewInt(1000)), word(big.NewInt(12))...),
			},
		},
	}

	nftTokenID, err := staking.NFTTokenIDFromReceipt(receipt)
	assert.NoError(t, err)
	assert.Equal(t, uint64(12), nftTokenID)
}

func TestStaking_GetStakePosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mocks.NewMockGateway(ctrl)
	staking := contracts.NewStaking(gw, stakingAddr)

	gw.EXPECT().Call(gomock.Any(), stakingAddr, gomock.Any()).
		Return(append(word(big.NewInt(12)), word(big.NewInt(1500))...), nil)

	position, err := staking.GetStakePosition(context.Background(), eventAccount, 3)
	assert.NoError(t, err)
	assert.Equal(t, uint64(3), position.PatentID)
	assert.Equal(t, uint64(12), position.NFTTokenID)
	assert.Equal(t, "1500", position.StakedAmount.String())
}

func TestStaking_Unstake(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mocks.NewMockGateway(ctrl)
	staking := contracts.NewStaking(gw, stakingAddr)

	pending := gateway.PendingTx{Hash: eventTxHash}
	gw.EXPECT().Send(gomock.Any(), stakingAddr, gomock.Any(), nil, uint64(domain.GasLimitTrade)).
		Return(pending, nil)

	got, err := staking.Unstake(context.Background(), 12)
	assert.NoError(t, err)
	assert.Equal(t, pending, got)
}

func TestStaking_GetStakePosition_NotStaked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mocks.NewMockGateway(ctrl)
	staking := contracts.NewStaking(gw, stakingAddr)

	// A zero position means not staked, not an error
	gw.EXPECT().Call(gomock.Any(), stakingAddr, gomock.Any()).
		Return(append(word(big.NewInt(0)), word(big.NewInt(0))...), nil)

	position, err := staking.GetStakePosition(context.Background(), eventAccount, 3)
	assert.NoError(t, err)
	assert.Nil(t, position)
}
