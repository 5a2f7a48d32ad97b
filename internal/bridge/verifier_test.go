package bridge_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/alitto/pond/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/nft-bridge/internal/bridge"
	"github.com/feral-file/nft-bridge/internal/domain"
	"github.com/feral-file/nft-bridge/internal/logger"
	"github.com/feral-file/nft-bridge/internal/mocks"
	"github.com/feral-file/nft-bridge/internal/store"
	"github.com/feral-file/nft-bridge/internal/store/schema"
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

const (
	adminWallet = "juno1adminxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"
	wallet      = "juno1walletxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"
	account     = "0xaccount"
	contract    = "0xcontract"
	project     = "juno1projectxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"
)

type verifierMocks struct {
	signatures *mocks.MockSignatureVerifier
	history    *mocks.MockHistoryClient
	rollup     *mocks.MockRollupClient
	store      *mocks.MockStore
}

func newVerifier(ctrl *gomock.Controller) (*bridge.Verifier, verifierMocks) {
	m := verifierMocks{
		signatures: mocks.NewMockSignatureVerifier(ctrl),
		history:    mocks.NewMockHistoryClient(ctrl),
		rollup:     mocks.NewMockRollupClient(ctrl),
		store:      mocks.NewMockStore(ctrl),
	}
	v := bridge.NewVerifier(m.signatures, m.history, m.rollup, m.store, adminWallet, pond.NewPool(4))
	return v, m
}

func request(tokenIDs ...string) domain.MigrationRequest {
	return domain.MigrationRequest{
		SignedMessage: domain.SignedMessage{
			PubKey:    domain.PublicKey{Type: "tendermint/PubKeySecp256k1", Value: "cHVia2V5"},
			Signature: "c2lnbmF0dXJl",
		},
		AccountAddress:  account,
		ContractAddress: contract,
		WalletAddress:   wallet,
		ProjectID:       project,
		TokenIDs:        tokenIDs,
	}
}

// custodyTransfer is the history of a token correctly handed to the admin
// wallet by its holder.
func custodyTransfer(tokenID string) []domain.TransferEvent {
	return []domain.TransferEvent{
		{Contract: project, TokenID: tokenID, Sender: wallet, Recipient: adminWallet},
		{Contract: project, TokenID: tokenID, Sender: "minter", Recipient: wallet},
	}
}

func TestVerifier_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid signature aborts the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		v, m := newVerifier(ctrl)

		m.signatures.
			EXPECT().
			Verify(gomock.Any(), account, wallet).
			Return(domain.ErrInvalidSignature)

		_, err := v.Handle(ctx, request("1"))
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("accepted token is enqueued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		v, m := newVerifier(ctrl)

		m.signatures.EXPECT().Verify(gomock.Any(), account, wallet).Return(nil)
		m.history.EXPECT().TransfersForToken(gomock.Any(), project, "1").Return(custodyTransfer("1"), nil)
		m.rollup.EXPECT().HasToken(gomock.Any(), contract, "1").Return(false, nil)
		m.store.
			EXPECT().
			EnqueueMigrations(gomock.Any(), store.EnqueueInput{
				WalletAddress:   wallet,
				AccountAddress:  account,
				ContractAddress: contract,
				TokenIDs:        []string{"1"},
			}).
			Return([]schema.QueueItem{{ID: 1, TokenID: "1"}}, nil)

		result, err := v.Handle(ctx, request("1"))
		require.NoError(t, err)

		assert.Equal(t, []string{"1"}, result.Accepted)
		assert.True(t, result.Checks["1"].Passed())
	})

	t.Run("repeated token ids collapse into one check and one row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		v, m := newVerifier(ctrl)

		m.signatures.EXPECT().Verify(gomock.Any(), account, wallet).Return(nil)
		// Each token is checked once no matter how often the request names it.
		m.history.EXPECT().TransfersForToken(gomock.Any(), project, "1").Return(custodyTransfer("1"), nil).Times(1)
		m.rollup.EXPECT().HasToken(gomock.Any(), contract, "1").Return(false, nil).Times(1)
		m.store.
			EXPECT().
			EnqueueMigrations(gomock.Any(), store.EnqueueInput{
				WalletAddress:   wallet,
				AccountAddress:  account,
				ContractAddress: contract,
				TokenIDs:        []string{"1"},
			}).
			Return([]schema.QueueItem{{ID: 1, TokenID: "1"}}, nil)

		result, err := v.Handle(ctx, request("1", "1"))
		require.NoError(t, err)

		assert.Equal(t, []string{"1"}, result.Accepted)
	})

	t.Run("per-token failures never abort siblings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		v, m := newVerifier(ctrl)

		m.signatures.EXPECT().Verify(gomock.Any(), account, wallet).Return(nil)

		// Token 1 passes every check.
		m.history.EXPECT().TransfersForToken(gomock.Any(), project, "1").Return(custodyTransfer("1"), nil)
		m.rollup.EXPECT().HasToken(gomock.Any(), contract, "1").Return(false, nil)

		// Token 2 was never transferred to custody.
		m.history.EXPECT().TransfersForToken(gomock.Any(), project, "2").Return([]domain.TransferEvent{
			{Contract: project, TokenID: "2", Sender: "minter", Recipient: wallet},
		}, nil)

		// Token 3's last transfer was made by someone else.
		m.history.EXPECT().TransfersForToken(gomock.Any(), project, "3").Return([]domain.TransferEvent{
			{Contract: project, TokenID: "3", Sender: "juno1thief", Recipient: adminWallet},
		}, nil)

		// Token 4 has no on-chain history.
		m.history.EXPECT().TransfersForToken(gomock.Any(), project, "4").Return(nil, nil)

		// Token 5 is already minted on the target chain.
		m.history.EXPECT().TransfersForToken(gomock.Any(), project, "5").Return(custodyTransfer("5"), nil)
		m.rollup.EXPECT().HasToken(gomock.Any(), contract, "5").Return(true, nil)

		m.store.
			EXPECT().
			EnqueueMigrations(gomock.Any(), gomock.Any()).
			Return([]schema.QueueItem{{ID: 1, TokenID: "1"}}, nil)

		result, err := v.Handle(ctx, request("1", "2", "3", "4", "5"))
		require.NoError(t, err)

		assert.Equal(t, []string{"1"}, result.Accepted)
		assert.Equal(t, bridge.CheckNotTransferredToAdmin, result.Checks["2"].Reason)
		assert.Equal(t, bridge.CheckWrongOwner, result.Checks["3"].Reason)
		assert.Equal(t, bridge.CheckNoTransferFound, result.Checks["4"].Reason)
		assert.Equal(t, bridge.CheckAlreadyMinted, result.Checks["5"].Reason)
	})

	t.Run("origin failures map to distinct reasons", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		v, m := newVerifier(ctrl)

		m.signatures.EXPECT().Verify(gomock.Any(), account, wallet).Return(nil)

		m.history.
			EXPECT().
			TransfersForToken(gomock.Any(), project, "1").
			Return(nil, &domain.OriginServerError{StatusCode: http.StatusBadGateway})
		m.history.
			EXPECT().
			TransfersForToken(gomock.Any(), project, "2").
			Return(nil, domain.ErrHistoryFetch)

		result, err := v.Handle(ctx, request("1", "2"))
		require.NoError(t, err)

		assert.Empty(t, result.Accepted)
		assert.Equal(t, bridge.CheckOriginUnavailable, result.Checks["1"].Reason)
		assert.Equal(t, bridge.CheckFetchFailed, result.Checks["2"].Reason)
	})

	t.Run("target chain outage marks token retriable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		v, m := newVerifier(ctrl)

		m.signatures.EXPECT().Verify(gomock.Any(), account, wallet).Return(nil)
		m.history.EXPECT().TransfersForToken(gomock.Any(), project, "1").Return(custodyTransfer("1"), nil)
		m.rollup.EXPECT().HasToken(gomock.Any(), contract, "1").Return(false, errors.New("gateway unreachable"))

		result, err := v.Handle(ctx, request("1"))
		require.NoError(t, err)

		assert.Empty(t, result.Accepted)
		assert.Equal(t, bridge.CheckOwnershipUnavailable, result.Checks["1"].Reason)
	})

	t.Run("falls back to the registered token set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		v, m := newVerifier(ctrl)

		m.signatures.EXPECT().Verify(gomock.Any(), account, wallet).Return(nil)
		m.store.
			EXPECT().
			GetCustomerTokens(gomock.Any(), wallet, project).
			Return(&schema.CustomerTokenSet{
				WalletAddress: wallet,
				ProjectID:     project,
				TokenIDs:      []string{"7"},
			}, nil)
		m.history.EXPECT().TransfersForToken(gomock.Any(), project, "7").Return(custodyTransfer("7"), nil)
		m.rollup.EXPECT().HasToken(gomock.Any(), contract, "7").Return(false, nil)
		m.store.
			EXPECT().
			EnqueueMigrations(gomock.Any(), gomock.Any()).
			Return([]schema.QueueItem{{ID: 1, TokenID: "7"}}, nil)

		result, err := v.Handle(ctx, request())
		require.NoError(t, err)
		assert.Equal(t, []string{"7"}, result.Accepted)
	})

	t.Run("no tokens anywhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		v, m := newVerifier(ctrl)

		m.signatures.EXPECT().Verify(gomock.Any(), account, wallet).Return(nil)
		m.store.EXPECT().GetCustomerTokens(gomock.Any(), wallet, project).Return(nil, nil)

		_, err := v.Handle(ctx, request())
		assert.ErrorIs(t, err, domain.ErrNoTokensFound)
	})

	t.Run("nothing accepted skips the queue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		v, m := newVerifier(ctrl)

		m.signatures.EXPECT().Verify(gomock.Any(), account, wallet).Return(nil)
		m.history.EXPECT().TransfersForToken(gomock.Any(), project, "1").Return(nil, nil)

		result, err := v.Handle(ctx, request("1"))
		require.NoError(t, err)

		assert.Empty(t, result.Accepted)
		// EnqueueMigrations must not have been called; gomock verifies this
		// by the absence of an expectation.
	})

	t.Run("enqueue failure is request fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		v, m := newVerifier(ctrl)

		m.signatures.EXPECT().Verify(gomock.Any(), account, wallet).Return(nil)
		m.history.EXPECT().TransfersForToken(gomock.Any(), project, "1").Return(custodyTransfer("1"), nil)
		m.rollup.EXPECT().HasToken(gomock.Any(), contract, "1").Return(false, nil)
		m.store.
			EXPECT().
			EnqueueMigrations(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database down"))

		_, err := v.Handle(ctx, request("1"))
		assert.ErrorIs(t, err, domain.ErrEnqueueFailed)
	})
}
