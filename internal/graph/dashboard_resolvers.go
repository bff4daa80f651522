package graph

import (
	"github.com/graphql-go/graphql"
)

func (r *Resolver) resolveDashboard(p graphql.ResolveParams) (any, error) {
	d, err := r.Dashboard.Summary(p.Context, optStringArg(p.Args, "month"))
	if err != nil {
		return nil, err
	}
	return newDashboardModel(*d), nil
}
