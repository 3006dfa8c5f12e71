package patents_test

import (
	"context"
	"math/big"
	"os"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/gateway"
	"github.com/patentdex/patentdex/internal/logger"
	"github.com/patentdex/patentdex/internal/mocks"
	"github.com/patentdex/patentdex/internal/patents"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var (
	patentTokenAddr = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	patentAccount   = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	vaultAddr       = common.HexToAddress("0xCf7Ed3AccA5a467e9e704C703E8D87F634fB0Fc9")
	patentTxHash    = common.HexToHash("0xdeadbeef")
)

func patentWord(v *big.Int) []byte {
	return common.LeftPadBytes(v.Bytes(), 32)
}

// patentTokens converts whole tokens into base units.
func patentTokens(tokens int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(tokens), big.NewInt(1e18))
}

type testServiceMocks struct {
	ctrl     *gomock.Controller
	gw       *mocks.MockGateway
	registry *mocks.MockRegistryContract
	factory  *mocks.MockFactoryContract
	staking  *mocks.MockStakingContract
	store    *mocks.MockStore
	resolver *mocks.MockResolver
	service  patents.Service
}

func setupTestService(t *testing.T) *testServiceMocks {
	ctrl := gomock.NewController(t)

	tm := &testServiceMocks{
		ctrl:     ctrl,
		gw:       mocks.NewMockGateway(ctrl),
		registry: mocks.NewMockRegistryContract(ctrl),
		factory:  mocks.NewMockFactoryContract(ctrl),
		staking:  mocks.NewMockStakingContract(ctrl),
		store:    mocks.NewMockStore(ctrl),
		resolver: mocks.NewMockResolver(ctrl),
	}
	tm.service = patents.NewService(tm.gw, tm.registry, tm.factory, tm.staking, tm.store, tm.resolver)
	return tm
}

func tearDownTestService(tm *testServiceMocks) {
	tm.ctrl.Finish()
}

func TestService_Register(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	input := patents.RegisterInput{
		Title:        "Gene Editing Method",
		ExternalID:   "US1234567",
		Description:  "CRISPR delivery vector",
		DocumentName: "patent.pdf",
		Document:     strings.NewReader("document body"),
	}
	pending := gateway.PendingTx{Hash: patentTxHash}
	receipt := &types.Receipt{TxHash: patentTxHash, Status: types.ReceiptStatusSuccessful}

	gomock.InOrder(
		tm.store.EXPECT().PinFile(gomock.Any(), "patent.pdf", input.Document).Return("QmDoc", nil),
		tm.store.EXPECT().PinJSON(gomock.Any(), "Gene Editing Method.json", gomock.Any()).Return("QmMeta", nil),
		tm.registry.EXPECT().RegisterPatent(gomock.Any(), "Gene Editing Method", "QmMeta", "US1234567").Return(pending, nil),
		tm.gw.EXPECT().Await(gomock.Any(), pending).Return(receipt, nil),
		tm.registry.EXPECT().PatentIDFromReceipt(receipt).Return(uint64(7), nil),
	)
	tm.registry.EXPECT().GetPatent(gomock.Any(), uint64(7)).Return(&domain.PatentRecord{
		ID:          7,
		Title:       "Gene Editing Method",
		ContentHash: "QmMeta",
		ExternalID:  "US1234567",
		Inventor:    patentAccount.Hex(),
	}, nil)
	tm.factory.EXPECT().GetPatentToken(gomock.Any(), uint64(7)).Return(common.Address{}, nil)

	record, err := tm.service.Register(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), record.ID)
	assert.Equal(t, "QmMeta", record.ContentHash)
	assert.False(t, record.Tokenized())
}

func TestService_Register_Validation(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	// Nothing is pinned for an invalid request
	_, err := tm.service.Register(context.Background(), patents.RegisterInput{
		Document: strings.NewReader("x"),
	})
	assert.ErrorContains(t, err, "title is required")

	_, err = tm.service.Register(context.Background(), patents.RegisterInput{
		Title: "No Document",
	})
	assert.ErrorContains(t, err, "document is required")
}

func TestService_Tokenize(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	pending := gateway.PendingTx{Hash: patentTxHash}
	receipt := &types.Receipt{TxHash: patentTxHash, Status: types.ReceiptStatusSuccessful}
	fee := big.NewInt(500)

	gomock.InOrder(
		tm.registry.EXPECT().GetPatent(gomock.Any(), uint64(7)).Return(&domain.PatentRecord{
			ID:           7,
			TokenAddress: domain.ZeroAddress,
		}, nil),
		tm.factory.EXPECT().CreatePatentToken(gomock.Any(), "Gene Token", "GENE", uint64(7), fee).Return(pending, nil),
		tm.gw.EXPECT().Await(gomock.Any(), pending).Return(receipt, nil),
		tm.factory.EXPECT().TokenAddressFromReceipt(receipt).Return(patentTokenAddr, nil),
	)

	tokenAddr, err := tm.service.Tokenize(context.Background(), 7, "Gene Token", "GENE", fee)
	assert.NoError(t, err)
	assert.Equal(t, patentTokenAddr, tokenAddr)
}

func TestService_Tokenize_AlreadyTokenized(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	tm.registry.EXPECT().GetPatent(gomock.Any(), uint64(7)).Return(&domain.PatentRecord{
		ID:           7,
		TokenAddress: patentTokenAddr.Hex(),
	}, nil)

	_, err := tm.service.Tokenize(context.Background(), 7, "Gene Token", "GENE", big.NewInt(500))
	assert.ErrorContains(t, err, "already has token")
}

func TestService_Get_MergesTokenAddress(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	tm.registry.EXPECT().GetPatent(gomock.Any(), uint64(3)).Return(&domain.PatentRecord{ID: 3, Title: "A"}, nil)
	tm.factory.EXPECT().GetPatentToken(gomock.Any(), uint64(3)).Return(patentTokenAddr, nil)

	record, err := tm.service.Get(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, patentTokenAddr.Hex(), record.TokenAddress)
	assert.True(t, record.Tokenized())
}

func TestService_List_SkipsUnreadablePatents(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	tm.registry.EXPECT().GetTotalPatents(gomock.Any()).Return(uint64(3), nil)
	tm.registry.EXPECT().GetPatent(gomock.Any(), uint64(1)).Return(&domain.PatentRecord{ID: 1}, nil)
	tm.factory.EXPECT().GetPatentToken(gomock.Any(), uint64(1)).Return(common.Address{}, nil)
	tm.registry.EXPECT().GetPatent(gomock.Any(), uint64(2)).Return(nil, assert.AnError)
	tm.registry.EXPECT().GetPatent(gomock.Any(), uint64(3)).Return(&domain.PatentRecord{ID: 3}, nil)
	tm.factory.EXPECT().GetPatentToken(gomock.Any(), uint64(3)).Return(patentTokenAddr, nil)

	records, err := tm.service.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, uint64(1), records[0].ID)
	assert.Equal(t, uint64(3), records[1].ID)
}

func TestService_Metadata(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	tm.registry.EXPECT().GetPatent(gomock.Any(), uint64(7)).
		Return(&domain.PatentRecord{ID: 7, ContentHash: "QmMeta"}, nil)
	tm.resolver.EXPECT().FetchJSON(gomock.Any(), "QmMeta", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, out interface{}) error {
			meta := out.(*patents.PatentMetadata)
			meta.Title = "Gene Editing Method"
			meta.DocumentCID = "QmDoc"
			return nil
		})

	meta, err := tm.service.Metadata(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, "Gene Editing Method", meta.Title)
	assert.Equal(t, "QmDoc", meta.DocumentCID)
}

func TestService_Metadata_NoDocument(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	tm.registry.EXPECT().GetPatent(gomock.Any(), uint64(8)).
		Return(&domain.PatentRecord{ID: 8}, nil)

	meta, err := tm.service.Metadata(context.Background(), 8)
	assert.Error(t, err)
	assert.Nil(t, meta)
}

func TestService_Verify(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	pending := gateway.PendingTx{Hash: patentTxHash}
	tm.registry.EXPECT().VerifyPatent(gomock.Any(), uint64(7)).Return(pending, nil)
	tm.gw.EXPECT().Await(gomock.Any(), pending).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	assert.NoError(t, tm.service.Verify(context.Background(), 7))
}

func TestService_Stake(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	amount := patentTokens(2000)
	approvePending := gateway.PendingTx{Hash: common.HexToHash("0xa99")}
	stakePending := gateway.PendingTx{Hash: patentTxHash}
	stakeReceipt := &types.Receipt{TxHash: patentTxHash, Status: types.ReceiptStatusSuccessful}

	tm.factory.EXPECT().GetPatentToken(gomock.Any(), uint64(7)).Return(patentTokenAddr, nil)
	tm.gw.EXPECT().HasCode(gomock.Any(), patentTokenAddr).Return(true, nil)
	tm.gw.EXPECT().Account().Return(patentAccount)
	tm.staking.EXPECT().Address().Return(vaultAddr).AnyTimes()

	gomock.InOrder(
		// balanceOf covers the stake, allowance does not
		tm.gw.EXPECT().Call(gomock.Any(), patentTokenAddr, gomock.Any()).Return(patentWord(patentTokens(5000)), nil),
		tm.gw.EXPECT().Call(gomock.Any(), patentTokenAddr, gomock.Any()).Return(patentWord(big.NewInt(0)), nil),
		tm.gw.EXPECT().Send(gomock.Any(), patentTokenAddr, gomock.Any(), nil, domain.GasLimitTrade).Return(approvePending, nil),
		tm.gw.EXPECT().Await(gomock.Any(), approvePending).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil),
		tm.staking.EXPECT().Stake(gomock.Any(), patentTokenAddr, amount, "research", "ipfs://meta").Return(stakePending, nil),
		tm.gw.EXPECT().Await(gomock.Any(), stakePending).Return(stakeReceipt, nil),
		tm.staking.EXPECT().NFTTokenIDFromReceipt(stakeReceipt).Return(uint64(12), nil),
	)

	position, err := tm.service.Stake(context.Background(), 7, amount, "research", "ipfs://meta")
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), position.PatentID)
	assert.Equal(t, uint64(12), position.NFTTokenID)
	assert.Equal(t, amount, position.StakedAmount)
}

func TestService_Stake_InsufficientBalance(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	amount := patentTokens(2000)

	tm.factory.EXPECT().GetPatentToken(gomock.Any(), uint64(7)).Return(patentTokenAddr, nil)
	tm.gw.EXPECT().HasCode(gomock.Any(), patentTokenAddr).Return(true, nil)
	tm.gw.EXPECT().Account().Return(patentAccount)
	// balanceOf below the stake amount stops the flow before any approval
	tm.gw.EXPECT().Call(gomock.Any(), patentTokenAddr, gomock.Any()).Return(patentWord(patentTokens(100)), nil)

	position, err := tm.service.Stake(context.Background(), 7, amount, "", "")
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Nil(t, position)
}

func TestService_Stake_Untokenized(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	// The factory answers the zero address for an untokenized patent
	tm.factory.EXPECT().GetPatentToken(gomock.Any(), uint64(9)).Return(common.Address{}, nil)

	position, err := tm.service.Stake(context.Background(), 9, patentTokens(2000), "", "")
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	assert.Nil(t, position)
}

func TestService_Unstake(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	pending := gateway.PendingTx{Hash: patentTxHash}
	tm.staking.EXPECT().Unstake(gomock.Any(), uint64(12)).Return(pending, nil)
	tm.gw.EXPECT().Await(gomock.Any(), pending).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	assert.NoError(t, tm.service.Unstake(context.Background(), 12))
}

func TestService_Position(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	want := &domain.StakePosition{PatentID: 7, NFTTokenID: 12, StakedAmount: patentTokens(2000)}
	tm.gw.EXPECT().Account().Return(patentAccount)
	tm.staking.EXPECT().GetStakePosition(gomock.Any(), patentAccount, uint64(7)).Return(want, nil)

	position, err := tm.service.Position(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, want, position)
}
