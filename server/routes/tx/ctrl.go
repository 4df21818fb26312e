package tx

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/shruggr/go-bpu/idx"
	"github.com/shruggr/go-bpu/server/routes"
)

var ingest *idx.IngestCtx

func RegisterRoutes(r fiber.Router, ingestCtx *idx.IngestCtx) {
	ingest = ingestCtx
	r.Get("/presets", ListPresets)
	r.Post("/parse", ParseTx)
	r.Get("/:txid", ParseTxid)
}

// @Summary List presets
// @Description Names of the split presets accepted by the parse endpoints
// @Tags tx
// @Produce json
// @Success 200 {array} string
// @Router /v1/tx/presets [get]
func ListPresets(c *fiber.Ctx) error {
	names := make([]string, 0, len(ingest.Presets))
	for name := range ingest.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return c.JSON(names)
}

// @Summary Parse raw transaction
// @Description Projects a raw transaction (hex text or binary body) into tapes and cells
// @Tags tx
// @Accept plain,octet-stream
// @Produce json
// @Param preset query string false "Split preset (bob, bitcom, ord)"
// @Param fmt query string false "Body format: beef for BEEF, raw otherwise"
// @Success 200 {object} idx.IndexContext
// @Failure 400 {string} string "Invalid transaction"
// @Router /v1/tx/parse [post]
func ParseTx(c *fiber.Ctx) error {
	rawtx, ok := routes.ReadRawtx(c)
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if _, err := ingest.Preset(c.Query("preset")); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	var idxCtx *idx.IndexContext
	var err error
	if c.Query("fmt") == "beef" {
		idxCtx, err = ingest.ParseBeef(c.Context(), rawtx, c.Query("preset"))
	} else {
		idxCtx, err = ingest.ParseRawtx(c.Context(), rawtx, c.Query("preset"))
	}
	if err != nil {
		return routes.HttpError(err)
	}
	return c.JSON(idxCtx)
}

// @Summary Parse transaction by txid
// @Description Loads a transaction by id and projects it into tapes and cells
// @Tags tx
// @Produce json
// @Param txid path string true "Transaction ID"
// @Param preset query string false "Split preset (bob, bitcom, ord)"
// @Success 200 {object} idx.IndexContext
// @Failure 404 {string} string "Transaction not found"
// @Router /v1/tx/{txid} [get]
func ParseTxid(c *fiber.Ctx) error {
	txid := c.Params("txid")
	if !routes.ValidTxid(txid) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid txid")
	}
	if _, err := ingest.Preset(c.Query("preset")); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	idxCtx, err := ingest.ParseTxid(c.Context(), txid, c.Query("preset"))
	if err != nil {
		return routes.HttpError(err)
	}
	return c.JSON(idxCtx)
}
