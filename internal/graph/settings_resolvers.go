package graph

import (
	"github.com/graphql-go/graphql"

	"mymoney/internal/core"
)

func (r *Resolver) resolveSettings(p graphql.ResolveParams) (any, error) {
	s, err := r.Settings.Get(p.Context)
	if err != nil {
		return nil, err
	}
	return newSettingsModel(*s), nil
}

func (r *Resolver) resolveUpdateSettings(p graphql.ResolveParams) (any, error) {
	in := inputArg(p.Args, "input")
	s, err := r.Settings.Update(p.Context, core.SettingsPatch{
		MainCurrency: optStringArg(in, "mainCurrency"),
		Language:     optStringArg(in, "language"),
	})
	if err != nil {
		return nil, err
	}
	return newSettingsModel(*s), nil
}

func (r *Resolver) resolveSupportedCurrencies(p graphql.ResolveParams) (any, error) {
	out := make([]currencyModel, len(core.SupportedCurrencies))
	for i, c := range core.SupportedCurrencies {
		out[i] = currencyModel{Code: c.Code, Name: c.Name, Symbol: c.Symbol}
	}
	return out, nil
}

func (r *Resolver) resolveSupportedLanguages(p graphql.ResolveParams) (any, error) {
	out := make([]languageModel, len(core.SupportedLanguages))
	for i, l := range core.SupportedLanguages {
		out[i] = languageModel{Code: l.Code, Name: l.Name, NativeName: l.NativeName}
	}
	return out, nil
}
