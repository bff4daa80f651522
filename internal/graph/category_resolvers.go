package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"mymoney/internal/core"
)

func (r *Resolver) resolveCategories(p graphql.ResolveParams) (any, error) {
	categories, err := r.Categories.List(p.Context)
	if err != nil {
		return nil, err
	}
	out := make([]categoryModel, len(categories))
	for i, c := range categories {
		out[i] = newCategoryModel(c)
	}
	return out, nil
}

func (r *Resolver) resolveCategory(p graphql.ResolveParams) (any, error) {
	c, err := r.Categories.Get(p.Context, idArg(p.Args, "id"))
	if err != nil || c == nil {
		return nil, err
	}
	return newCategoryModel(*c), nil
}

func (r *Resolver) resolveCreateCategory(p graphql.ResolveParams) (any, error) {
	in := inputArg(p.Args, "input")
	c, err := r.Categories.Create(p.Context, core.NewCategory{
		Name:  stringArg(in, "name"),
		Color: stringArg(in, "color"),
		Icon:  optStringArg(in, "icon"),
	})
	if err != nil {
		return nil, err
	}
	return newCategoryModel(*c), nil
}

func (r *Resolver) resolveUpdateCategory(p graphql.ResolveParams) (any, error) {
	id := idArg(p.Args, "id")
	in := inputArg(p.Args, "input")
	c, err := r.Categories.Update(p.Context, id, core.CategoryPatch{
		Name:  optStringArg(in, "name"),
		Color: optStringArg(in, "color"),
		Icon:  optStringArg(in, "icon"),
	})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("category with id %d not found", id)
	}
	return newCategoryModel(*c), nil
}

func (r *Resolver) resolveDeleteCategory(p graphql.ResolveParams) (any, error) {
	return r.Categories.Delete(p.Context, idArg(p.Args, "id"))
}
