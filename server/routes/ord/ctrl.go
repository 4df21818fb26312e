package ord

import (
	"time"

	"github.com/bsv-blockchain/go-sdk/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/shruggr/go-bpu/bpu"
	"github.com/shruggr/go-bpu/idx"
	"github.com/shruggr/go-bpu/mod/ord"
	"github.com/shruggr/go-bpu/server/routes"
)

var ingest *idx.IngestCtx

func RegisterRoutes(r fiber.Router, ingestCtx *idx.IngestCtx) {
	ingest = ingestCtx
	r.Post("/", ExtractOrd)
	r.Get("/:txid", OrdByTxid)
}

func handle(c *fiber.Ctx, tx *transaction.Transaction) error {
	bmap := ord.NewBMap(uint64(time.Now().Unix()))
	if err := ord.Handler(tx, bmap, ingest.MaxDepth); err != nil {
		return routes.HttpError(err)
	}
	return c.JSON(bmap)
}

// @Summary Extract inscriptions
// @Description Finds ord envelopes in a raw transaction body and returns their content
// @Tags ord
// @Accept plain,octet-stream
// @Produce json
// @Param fmt query string false "Body format: beef for BEEF, raw otherwise"
// @Success 200 {object} ord.BMap
// @Failure 404 {string} string "No envelope found"
// @Router /v1/ord [post]
func ExtractOrd(c *fiber.Ctx) error {
	rawtx, ok := routes.ReadRawtx(c)
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	tx, err := routes.DecodeTx(c, rawtx)
	if err != nil {
		return routes.HttpError(err)
	}
	return handle(c, tx)
}

// @Summary Extract inscriptions by txid
// @Description Loads a transaction and returns the content of its ord envelopes
// @Tags ord
// @Produce json
// @Param txid path string true "Transaction ID"
// @Success 200 {object} ord.BMap
// @Failure 400 {string} string "Invalid txid"
// @Failure 404 {string} string "No envelope found"
// @Router /v1/ord/{txid} [get]
func OrdByTxid(c *fiber.Ctx) error {
	txid := c.Params("txid")
	if !routes.ValidTxid(txid) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid txid")
	}
	if ingest.Loader == nil {
		return routes.HttpError(&bpu.Error{Stage: bpu.StageLoad, Err: bpu.ErrTxNotFound})
	}
	tx, err := ingest.Loader.LoadTx(c.Context(), txid)
	if err != nil {
		return routes.HttpError(err)
	}
	return handle(c, tx)
}
