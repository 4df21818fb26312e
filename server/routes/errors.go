package routes

import (
	"encoding/hex"
	"errors"

	"github.com/bsv-blockchain/go-sdk/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/shruggr/go-bpu/bpu"
	"github.com/shruggr/go-bpu/lib"
)

// HttpError maps a pipeline error to the status a client should see.
func HttpError(err error) *lib.HttpError {
	switch {
	case errors.Is(err, bpu.ErrTxNotFound), errors.Is(err, bpu.ErrEnvelopeNotFound):
		return lib.NewHttpError(fiber.StatusNotFound, err)
	case bpu.StageOf(err) == bpu.StageDecode:
		return lib.NewHttpError(fiber.StatusBadRequest, err)
	case bpu.StageOf(err) == bpu.StageLoad:
		return lib.NewHttpError(fiber.StatusBadGateway, err)
	default:
		return lib.NewHttpError(fiber.StatusInternalServerError, err)
	}
}

// ReadRawtx returns the raw transaction carried in a request body, accepting
// binary or hex encodings.
func ReadRawtx(c *fiber.Ctx) ([]byte, bool) {
	switch c.Get("Content-Type") {
	case "application/octet-stream":
		return c.Body(), len(c.Body()) > 0
	case "text/plain", "":
		raw, err := lib.NewByteStringFromHex(string(c.Body()))
		return raw, err == nil && len(raw) > 0
	}
	return nil, false
}

// DecodeTx decodes a body returned by ReadRawtx. With fmt=beef the body is
// read as BEEF, which carries the merkle path of a mined transaction.
func DecodeTx(c *fiber.Ctx, rawtx []byte) (tx *transaction.Transaction, err error) {
	if c.Query("fmt") == "beef" {
		if tx, err = transaction.NewTransactionFromBEEF(rawtx); err == nil && tx == nil {
			err = bpu.ErrTxNotFound
		}
	} else {
		tx, err = transaction.NewTransactionFromBytes(rawtx)
	}
	if err != nil {
		return nil, &bpu.Error{Stage: bpu.StageDecode, Err: err}
	}
	return tx, nil
}

// ValidTxid reports whether txid is 32 bytes of hex.
func ValidTxid(txid string) bool {
	b, err := hex.DecodeString(txid)
	return err == nil && len(b) == 32
}
