package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/dasgo/base/ctx"
	"github.com/x-xyz/dasgo/base/delivery"
	"github.com/x-xyz/dasgo/base/validator"
	"github.com/x-xyz/dasgo/domain"
	"github.com/x-xyz/dasgo/domain/das"
	"github.com/x-xyz/dasgo/middleware"
)

type handler struct {
	das das.Usecase
}

func New(e *echo.Echo, uc das.Usecase) {
	h := &handler{
		das: uc,
	}

	g := e.Group("/das")

	g.GET("/account/:account", h.getAccount)
	g.GET("/account/:account/info", h.getAccountInfo)
	g.GET("/account-id/:accountId", h.getAccountById)

	g.GET("/records/:account", h.getRecords)
	g.GET("/records/:account/:key", h.getRecord)
	g.POST("/records/:account/batch", h.batchRecords)
	g.GET("/addrs/:account/:chain", h.getAddrs)

	g.GET("/owner/:address", h.getOwnedAccounts, middleware.IsValidAddress("address"))
	g.POST("/reverse", h.reverse)

	g.GET("/avatar/:account", h.getAvatar, middleware.IsSupportedAccount("account"))
	g.GET("/style/:account", h.getStyle)
}

// getAccount
//
//	@Summary		Get account view
//	@Description	Account info merged with its records, grouped by address and profile
//	@Tags			das
//	@Produce		json
//	@Param			account	path		string	true	"account"	example(imac.bit)
//	@Success		200		{object}	object{data=das.AccountView}
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/das/account/{account} [get]
func (h *handler) getAccount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Account string `param:"account" validate:"required"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.das.Account(ctx, p.Account)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getAccountInfo
//
//	@Summary		Get account info
//	@Tags			das
//	@Produce		json
//	@Param			account	path		string	true	"account"	example(imac.bit)
//	@Success		200		{object}	object{data=das.Account}
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/das/account/{account}/info [get]
func (h *handler) getAccountInfo(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Account string `param:"account" validate:"required"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.das.GetAccountData(ctx, p.Account)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getAccountById
//
//	@Summary		Get account info by account id
//	@Tags			das
//	@Produce		json
//	@Param			accountId	path		string	true	"account id"	example(0x5728088435fb8788472a9ca601fbc0b9cbea8be3)
//	@Success		200			{object}	object{data=das.Account}
//	@Failure		404
//	@Failure		500
//	@Router			/das/account-id/{accountId} [get]
func (h *handler) getAccountById(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		AccountId string `param:"accountId" validate:"required"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.das.Resolver().AccountById(ctx, p.AccountId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getRecords
//
//	@Summary		List account records
//	@Description	Every record of the account, or those matching key
//	@Tags			das
//	@Produce		json
//	@Param			account	path		string	true	"account"	example(imac.bit)
//	@Param			key		query		string	false	"record key"	example(address.eth)
//	@Success		200		{object}	object{data=[]das.AccountRecord}
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/das/records/{account} [get]
func (h *handler) getRecords(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Account string `param:"account" validate:"required"`
		Key     string `query:"key"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.das.Resolver().Records(ctx, p.Account, p.Key)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getRecord
//
//	@Summary		Get a record value
//	@Description	Value of the first record matching key
//	@Tags			das
//	@Produce		json
//	@Param			account	path		string	true	"account"		example(imac.bit)
//	@Param			key		path		string	true	"record key"	example(address.eth)
//	@Success		200		{object}	object{data=string}
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/das/records/{account}/{key} [get]
func (h *handler) getRecord(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Account string `param:"account" validate:"required"`
		Key     string `param:"key" validate:"required"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.das.Record(ctx, p.Account, p.Key)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type batchRecordsParams struct {
	Account string   `param:"account" validate:"required,dasaccount" swaggerignore:"true"`
	Keys    []string `json:"keys" validate:"required,min=1,dive,required" example:"address.eth,profile.twitter"`
}

// batchRecords
//
//	@Summary		Get several record values
//	@Description	Keys without a record are left out
//	@Tags			das
//	@Accept			json
//	@Produce		json
//	@Param			account	path		string						true	"account"	example(imac.bit)
//	@Param			params	body		http.batchRecordsParams		true	"params"
//	@Success		200		{object}	object{data=map[string]string}
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/das/records/{account}/batch [post]
func (h *handler) batchRecords(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := batchRecordsParams{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.das.Records(ctx, p.Account, p.Keys)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getAddrs
//
//	@Summary		List chain addresses of an account
//	@Tags			das
//	@Produce		json
//	@Param			account	path		string	true	"account"	example(imac.bit)
//	@Param			chain	path		string	true	"chain"		example(eth)
//	@Success		200		{object}	object{data=[]das.AccountRecord}
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/das/addrs/{account}/{chain} [get]
func (h *handler) getAddrs(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Account string `param:"account" validate:"required"`
		Chain   string `param:"chain" validate:"required"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.das.Resolver().Addrs(ctx, p.Account, p.Chain)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getOwnedAccounts
//
//	@Summary		List accounts of an owner
//	@Tags			das
//	@Produce		json
//	@Param			address		path		string	true	"owner key"	example(0x1d643fac9a463c9d544506006a6348c234da485f)
//	@Param			coinType	query		string	false	"coin type, 60 by default"	example(60)
//	@Success		200			{object}	object{data=[]das.OwnedAccount}
//	@Failure		400
//	@Failure		500
//	@Router			/das/owner/{address} [get]
func (h *handler) getOwnedAccounts(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address  domain.Address `param:"address" validate:"required"`
		CoinType das.CoinType   `query:"coinType"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	address := string(p.Address)
	if p.CoinType == "" || p.CoinType == das.CoinTypeETH {
		address = p.Address.ToLowerStr()
	}

	res, err := h.das.Resolver().AccountsForOwner(ctx, address, p.CoinType)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// reverse
//
//	@Summary		Get the reverse record of a key
//	@Tags			das
//	@Accept			json
//	@Produce		json
//	@Param			params	body		das.KeyDescriptor	true	"params"
//	@Success		200		{object}	object{data=string}
//	@Failure		400
//	@Failure		404
//	@Failure		502
//	@Router			/das/reverse [post]
func (h *handler) reverse(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := das.KeyDescriptor{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Type == "" {
		p.Type = das.KeyTypeBlockchain
	}
	if p.KeyInfo.CoinType == "" {
		p.KeyInfo.CoinType = das.CoinTypeETH
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if !validator.IsValidCoinType(string(p.KeyInfo.CoinType)) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidCoinType)
	}
	if p.KeyInfo.CoinType == das.CoinTypeETH {
		if !validator.IsValidAddress(p.KeyInfo.Key) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
		}
		p.KeyInfo.Key = domain.Address(p.KeyInfo.Key).ToLowerStr()
	}

	res, err := h.das.Resolver().ReverseRecord(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getAvatar
//
//	@Summary		Get the avatar of an account
//	@Description	Avatar resolver answer, passed through
//	@Tags			das
//	@Produce		json
//	@Param			account	path		string	true	"account"	example(imac.bit)
//	@Success		200		{object}	object{data=object}
//	@Failure		400
//	@Failure		502
//	@Router			/das/avatar/{account} [get]
func (h *handler) getAvatar(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.das.Resolver().GetAvatar(ctx, c.Param("account"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type styleResult struct {
	Account   string `json:"account"`
	Supported bool   `json:"supported"`
	Dotted    string `json:"dotted"`
	Hashed    string `json:"hashed"`
}

// getStyle
//
//	@Summary		Convert an account between sub account styles
//	@Tags			das
//	@Produce		json
//	@Param			account	path		string	true	"account"	example(imac#sub.bit)
//	@Success		200		{object}	object{data=http.styleResult}
//	@Router			/das/style/{account} [get]
func (h *handler) getStyle(c echo.Context) error {
	account := c.Param("account")
	r := h.das.Resolver()

	return delivery.MakeJsonResp(c, http.StatusOK, styleResult{
		Account:   account,
		Supported: r.IsSupportedAccount(account),
		Dotted:    r.ToDottedStyle(account),
		Hashed:    r.ToHashedStyle(account),
	})
}
