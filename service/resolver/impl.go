package resolver

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/dasgo/base/ctx"
	"github.com/x-xyz/dasgo/base/log"
	"github.com/x-xyz/dasgo/domain/das"
	"github.com/x-xyz/dasgo/service/provider"
	"golang.org/x/xerrors"
)

type impl struct {
	provider       provider.Provider
	client         http.Client
	timeout        time.Duration
	avatarResolver string
	identiconUrl   string
}

// NewClient returns a Resolver bound to cfg.Provider, or to a JSON-RPC
// provider dialed at cfg.Url.
func NewClient(cfg *ClientCfg) (das.Resolver, error) {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	p := cfg.Provider
	if p == nil {
		if cfg.Url == "" {
			return nil, &das.ConfigurationError{Code: das.UnspecifiedUrl, Method: ServiceName}
		}
		rpcClient, err := provider.NewClient(&provider.ClientCfg{
			Url:        cfg.Url,
			HttpClient: &cfg.HttpClient,
			Timeout:    timeout,
		})
		if err != nil {
			return nil, err
		}
		p = rpcClient
	}

	avatarResolver := cfg.AvatarResolver
	if avatarResolver == "" {
		avatarResolver = DefaultAvatarResolver
	}
	identiconUrl := cfg.IdenticonUrl
	if identiconUrl == "" {
		identiconUrl = DefaultIdenticonUrl
	}

	return &impl{
		provider:       p,
		client:         cfg.HttpClient,
		timeout:        timeout,
		avatarResolver: strings.TrimSuffix(avatarResolver, "/"),
		identiconUrl:   strings.TrimSuffix(identiconUrl, "/"),
	}, nil
}

func (im *impl) IsSupportedAccount(account string) bool {
	return das.IsSupportedAccount(account)
}

func (im *impl) ToDottedStyle(account string) string {
	return das.ToDottedStyle(account)
}

func (im *impl) ToHashedStyle(account string) string {
	return das.ToHashedStyle(account)
}

func (im *impl) Account(ctx bCtx.Ctx, account string) (*das.Account, error) {
	if !das.IsSupportedAccount(account) {
		return nil, &das.ResolutionError{Code: das.UnsupportedService, Account: account}
	}

	info, err := im.accountInfo(ctx, accountInfoParam{Account: account})
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, &das.ResolutionError{Code: das.UnregisteredAccount, Account: account}
	}

	return &das.Account{
		AccountInfo: *info,
		Avatar:      im.identicon(account),
	}, nil
}

func (im *impl) AccountById(ctx bCtx.Ctx, accountId string) (*das.Account, error) {
	info, err := im.accountInfo(ctx, accountInfoParam{AccountId: accountId})
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, &das.ResolutionError{Code: das.UnregisteredAccount, AccountId: accountId}
	}

	return &das.Account{
		AccountInfo: *info,
		Avatar:      im.identicon(accountId),
	}, nil
}

// accountInfo returns nil without error when the account is not registered
func (im *impl) accountInfo(ctx bCtx.Ctx, param accountInfoParam) (*das.AccountInfo, error) {
	res, err := im.call(ctx, MethodAccountInfo, param)
	if err != nil {
		return nil, err
	}
	if res.absent() {
		return nil, nil
	}

	data := accountInfoData{}
	if err := decode(MethodAccountInfo, res.Data, &data); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"param": param,
		}).Error("failed to decode account info")
		return nil, err
	}
	if data.AccountInfo == nil {
		return nil, xerrors.Errorf("%s: account_info missing: %w", MethodAccountInfo, das.ErrMalformedPayload)
	}
	return data.AccountInfo, nil
}

func (im *impl) Records(ctx bCtx.Ctx, account string, key ...string) ([]das.AccountRecord, error) {
	if !das.IsSupportedAccount(account) {
		return nil, &das.ResolutionError{Code: das.UnsupportedAccount, Account: account}
	}

	res, err := im.call(ctx, MethodAccountRecords, accountParam{Account: account})
	if err != nil {
		return nil, err
	}
	if res.absent() {
		return nil, &das.ResolutionError{Code: das.UnregisteredAccount, Account: account}
	}

	data := accountRecordsData{}
	if err := decode(MethodAccountRecords, res.Data, &data); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Error("failed to decode account records")
		return nil, err
	}
	records := data.Records
	if records == nil {
		records = []das.AccountRecord{}
	}

	if len(key) == 0 || key[0] == "" {
		return records, nil
	}

	return FilterRecords(records, key[0]), nil
}

// FilterRecords returns the records whose key equals the lower-cased key
func FilterRecords(records []das.AccountRecord, key string) []das.AccountRecord {
	key = strings.ToLower(key)
	res := []das.AccountRecord{}
	for _, r := range records {
		if r.Key == key {
			res = append(res, r)
		}
	}
	return res
}

func (im *impl) Addrs(ctx bCtx.Ctx, account string, chain string) ([]das.AccountRecord, error) {
	return im.Records(ctx, account, das.RecordKeyAddressPrefix+chain)
}

func (im *impl) AccountsForOwner(ctx bCtx.Ctx, address string, coinType das.CoinType) ([]das.OwnedAccount, error) {
	if coinType == "" {
		coinType = das.CoinTypeETH
	}

	res, err := im.call(ctx, MethodAccountList, accountListParam{
		Type: das.KeyTypeBlockchain,
		KeyInfo: keyInfo{
			CoinType: coinType,
			Key:      address,
		},
	})
	if err != nil {
		return nil, err
	}
	if res.absent() {
		return []das.OwnedAccount{}, nil
	}

	data := accountListData{}
	if err := decode(MethodAccountList, res.Data, &data); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to decode account list")
		return nil, err
	}
	if data.AccountList == nil {
		return []das.OwnedAccount{}, nil
	}
	return data.AccountList, nil
}

func (im *impl) ReverseRecord(ctx bCtx.Ctx, descriptor das.KeyDescriptor) (string, error) {
	res, err := im.call(ctx, MethodReverseRecord, descriptor)
	if err != nil {
		return "", err
	}
	if res.Errno != 0 {
		return "", &das.IndexerError{Method: MethodReverseRecord, Errno: res.Errno, Errmsg: res.Errmsg}
	}
	if res.absent() {
		return "", xerrors.Errorf("%s: %w", MethodReverseRecord, das.ErrEmptyPayload)
	}

	data := reverseRecordData{}
	if err := decode(MethodReverseRecord, res.Data, &data); err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"descriptor": descriptor,
		}).Error("failed to decode reverse record")
		return "", err
	}
	if data.Account == "" {
		return "", xerrors.Errorf("%s: %w", MethodReverseRecord, das.ErrEmptyPayload)
	}
	return data.Account, nil
}

func (im *impl) Ping(ctx bCtx.Ctx) error {
	res, err := im.call(ctx, MethodServerInfo)
	if err != nil {
		return err
	}
	if res.Errno != 0 {
		return &das.IndexerError{Method: MethodServerInfo, Errno: res.Errno, Errmsg: res.Errmsg}
	}
	return nil
}

func (im *impl) GetAvatar(ctx bCtx.Ctx, account string) (json.RawMessage, error) {
	url := im.avatarResolver + "/" + account
	body, err := im.get(ctx, url)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		ctx.WithField("url", url).Error("avatar resolver returned non json body")
		return nil, xerrors.Errorf("avatar %s: %w", account, das.ErrMalformedPayload)
	}
	return json.RawMessage(body), nil
}

func (im *impl) identicon(account string) string {
	return im.identiconUrl + "/identicon/" + account
}

// call sends a single parameter request and decodes the envelope. Provider
// errors are returned untouched.
func (im *impl) call(ctx bCtx.Ctx, method string, params ...interface{}) (*response, error) {
	raw, err := im.provider.Request(ctx, method, params...)
	if err != nil {
		return nil, err
	}

	res := &response{}
	if err := json.Unmarshal(raw, res); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
		}).Error("json.Unmarshal failed")
		return nil, xerrors.Errorf("%s: %v: %w", method, err, das.ErrMalformedPayload)
	}
	return res, nil
}

func decode(method string, data json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return xerrors.Errorf("%s: %v: %w", method, err, das.ErrMalformedPayload)
	}
	return nil
}

func (im *impl) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, im.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	resp, err := im.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		// the body is still handed back to the caller
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Warn("resp.StatusCode != 200")
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}
