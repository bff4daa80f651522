package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"mymoney/internal/core"
)

func assetTypeArg(m map[string]any, key string) core.AssetType {
	if v, ok := m[key].(core.AssetType); ok {
		return v
	}
	return ""
}

func optAssetTypeArg(m map[string]any, key string) *core.AssetType {
	if v, ok := m[key].(core.AssetType); ok {
		return &v
	}
	return nil
}

func (r *Resolver) resolvePortfolios(p graphql.ResolveParams) (any, error) {
	portfolios, err := r.Investments.ListPortfolios(p.Context)
	if err != nil {
		return nil, err
	}
	out := make([]portfolioModel, len(portfolios))
	for i, pf := range portfolios {
		out[i] = newPortfolioModel(pf)
	}
	return out, nil
}

func (r *Resolver) resolvePortfolio(p graphql.ResolveParams) (any, error) {
	pf, err := r.Investments.GetPortfolio(p.Context, idArg(p.Args, "id"))
	if err != nil || pf == nil {
		return nil, err
	}
	return newPortfolioModel(*pf), nil
}

func (r *Resolver) resolveAsset(p graphql.ResolveParams) (any, error) {
	a, err := r.Investments.GetAsset(p.Context, idArg(p.Args, "id"))
	if err != nil || a == nil {
		return nil, err
	}
	return newAssetModel(*a), nil
}

func (r *Resolver) resolveCreatePortfolio(p graphql.ResolveParams) (any, error) {
	in := inputArg(p.Args, "input")
	pf, err := r.Investments.CreatePortfolio(p.Context, core.NewPortfolio{
		Name:        stringArg(in, "name"),
		Description: optStringArg(in, "description"),
	})
	if err != nil {
		return nil, err
	}
	return newPortfolioModel(*pf), nil
}

func (r *Resolver) resolveUpdatePortfolio(p graphql.ResolveParams) (any, error) {
	id := idArg(p.Args, "id")
	in := inputArg(p.Args, "input")
	pf, err := r.Investments.UpdatePortfolio(p.Context, id, core.PortfolioPatch{
		Name:        optStringArg(in, "name"),
		Description: optStringArg(in, "description"),
	})
	if err != nil {
		return nil, err
	}
	if pf == nil {
		return nil, fmt.Errorf("portfolio with id %d not found", id)
	}
	return newPortfolioModel(*pf), nil
}

func (r *Resolver) resolveDeletePortfolio(p graphql.ResolveParams) (any, error) {
	return r.Investments.DeletePortfolio(p.Context, idArg(p.Args, "id"))
}

func (r *Resolver) resolveCreateAsset(p graphql.ResolveParams) (any, error) {
	in := inputArg(p.Args, "input")
	a, err := r.Investments.CreateAsset(p.Context, core.NewAsset{
		PortfolioID:   idArg(in, "portfolioId"),
		Symbol:        stringArg(in, "symbol"),
		Name:          stringArg(in, "name"),
		AssetType:     assetTypeArg(in, "assetType"),
		Quantity:      decimalArg(in, "quantity"),
		PurchasePrice: decimalArg(in, "purchasePrice"),
		PurchaseDate:  dateArg(in, "purchaseDate"),
		CurrentPrice:  optDecimalArg(in, "currentPrice"),
		Currency:      stringArg(in, "currency"),
		Notes:         optStringArg(in, "notes"),
	})
	if err != nil {
		return nil, err
	}
	return newAssetModel(*a), nil
}

func (r *Resolver) resolveUpdateAsset(p graphql.ResolveParams) (any, error) {
	id := idArg(p.Args, "id")
	in := inputArg(p.Args, "input")
	a, err := r.Investments.UpdateAsset(p.Context, id, core.AssetPatch{
		Symbol:        optStringArg(in, "symbol"),
		Name:          optStringArg(in, "name"),
		AssetType:     optAssetTypeArg(in, "assetType"),
		Quantity:      optDecimalArg(in, "quantity"),
		PurchasePrice: optDecimalArg(in, "purchasePrice"),
		PurchaseDate:  optDateArg(in, "purchaseDate"),
		CurrentPrice:  optDecimalArg(in, "currentPrice"),
		Currency:      optStringArg(in, "currency"),
		Notes:         optStringArg(in, "notes"),
	})
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("asset with id %d not found", id)
	}
	return newAssetModel(*a), nil
}

func (r *Resolver) resolveUpdateAssetPrice(p graphql.ResolveParams) (any, error) {
	id := idArg(p.Args, "id")
	a, err := r.Investments.UpdateAssetPrice(p.Context, id, decimalArg(p.Args, "currentPrice"))
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("asset with id %d not found", id)
	}
	return newAssetModel(*a), nil
}

func (r *Resolver) resolveDeleteAsset(p graphql.ResolveParams) (any, error) {
	return r.Investments.DeleteAsset(p.Context, idArg(p.Args, "id"))
}
