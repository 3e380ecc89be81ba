package usecase

import (
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/dasgo/base/ctx"
	"github.com/x-xyz/dasgo/base/log"
	"github.com/x-xyz/dasgo/base/metrics"
	"github.com/x-xyz/dasgo/domain/das"
	"github.com/x-xyz/dasgo/service/provider"
	"github.com/x-xyz/dasgo/service/resolver"
	"golang.org/x/sync/errgroup"
)

type UsecaseCfg struct {
	// Resolver takes precedence over every other field
	Resolver das.Resolver
	// Network defaults to mainnet
	Network string
	// Url overrides the endpoint of Network
	Url string

	Provider       provider.Provider
	HttpClient     http.Client
	Timeout        time.Duration
	AvatarResolver string
	IdenticonUrl   string
	// Metrics defaults to metrics.New("das")
	Metrics metrics.Service
}

type impl struct {
	resolver das.Resolver
	network  string
	url      string
	metrics  metrics.Service
}

func New(cfg *UsecaseCfg) (das.Usecase, error) {
	network := cfg.Network
	if network == "" {
		network = das.NetworkMainnet
	}
	met := cfg.Metrics
	if met == nil {
		met = metrics.New("das")
	}

	if cfg.Resolver != nil {
		return &impl{
			resolver: cfg.Resolver,
			network:  network,
			url:      cfg.Url,
			metrics:  met,
		}, nil
	}

	url := cfg.Url
	if url == "" {
		u, ok := das.UrlMap[network]
		if !ok {
			return nil, &das.ConfigurationError{Code: das.UnsupportedNetwork, Method: resolver.ServiceName, Network: network}
		}
		url = u
	}

	r, err := resolver.NewClient(&resolver.ClientCfg{
		Provider:       cfg.Provider,
		Url:            url,
		HttpClient:     cfg.HttpClient,
		Timeout:        cfg.Timeout,
		AvatarResolver: cfg.AvatarResolver,
		IdenticonUrl:   cfg.IdenticonUrl,
	})
	if err != nil {
		return nil, err
	}

	return &impl{
		resolver: r,
		network:  network,
		url:      url,
		metrics:  met,
	}, nil
}

func (im *impl) Resolver() das.Resolver {
	return im.resolver
}

func (im *impl) Network() string {
	return im.network
}

func (im *impl) Url() string {
	return im.url
}

func (im *impl) GetAccountData(c bCtx.Ctx, account string) (*das.Account, error) {
	res, err := im.resolver.Account(c, account)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Warn("resolver.Account failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Record(c bCtx.Ctx, account string, key string) (string, error) {
	records, err := im.resolver.Records(c, account)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Warn("resolver.Records failed")
		return "", err
	}

	key = strings.ToLower(key)
	for _, r := range records {
		if r.Key == key {
			return r.Value, nil
		}
	}
	return "", &das.ResolutionError{Code: das.RecordNotFound, Account: account, Key: key}
}

// Records resolves several keys with a single indexer call. Keys without a
// record are left out of the result.
func (im *impl) Records(c bCtx.Ctx, account string, keys []string) (map[string]string, error) {
	records, err := im.resolver.Records(c, account)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Warn("resolver.Records failed")
		return nil, err
	}

	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[strings.ToLower(k)] = true
	}

	res := map[string]string{}
	for _, r := range records {
		if !wanted[r.Key] {
			continue
		}
		if _, ok := res[r.Key]; !ok {
			res[r.Key] = r.Value
		}
	}
	return res, nil
}

func (im *impl) Account(c bCtx.Ctx, account string) (*das.AccountView, error) {
	var (
		info           *das.Account
		records        []das.AccountRecord
		infoErr, recErr error
	)

	// both fetches run to completion; the account error takes precedence
	g := errgroup.Group{}
	g.Go(func() error {
		info, infoErr = im.GetAccountData(c, account)
		return infoErr
	})
	g.Go(func() error {
		records, recErr = im.resolver.Records(c, account)
		return recErr
	})
	_ = g.Wait()

	err := infoErr
	if err == nil {
		err = recErr
	}
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Warn("failed to fetch account view")
		return nil, err
	}

	im.metrics.BumpAvg("account.records", float64(len(records)))
	return buildView(info, records), nil
}

func buildView(info *das.Account, records []das.AccountRecord) *das.AccountView {
	view := &das.AccountView{
		Account:  *info,
		Records:  records,
		Profiles: []das.AccountRecord{},
		Profile:  map[string]das.AccountRecord{},
		Address:  map[string]das.AccountRecord{},
	}
	for _, r := range records {
		key := strings.ToLower(r.Key)
		switch {
		case strings.HasPrefix(key, das.RecordKeyAddressPrefix):
			sub := strings.TrimPrefix(key, das.RecordKeyAddressPrefix)
			if _, ok := view.Address[sub]; !ok {
				view.Address[sub] = r
			}
		case strings.HasPrefix(key, das.RecordKeyProfilePrefix):
			view.Profiles = append(view.Profiles, r)
			sub := strings.TrimPrefix(key, das.RecordKeyProfilePrefix)
			if _, ok := view.Profile[sub]; !ok {
				view.Profile[sub] = r
			}
		}
	}
	return view
}
