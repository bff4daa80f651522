// Package graph wires the GraphQL schema over the service layer. Types are
// hand-built with graphql-go; resolvers translate between GraphQL arguments
// and the service inputs.
package graph

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/shopspring/decimal"
)

const (
	dateLayout = "2006-01-02"
)

// decimalType carries exact monetary values as strings over the wire. Numeric
// literals are accepted on input for convenience.
var decimalType = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Decimal",
	Description: "Arbitrary-precision decimal, serialized as a string.",
	Serialize: func(value any) any {
		switch v := value.(type) {
		case decimal.Decimal:
			return v.String()
		case *decimal.Decimal:
			if v == nil {
				return nil
			}
			return v.String()
		}
		return nil
	},
	ParseValue: parseDecimalValue,
	ParseLiteral: func(valueAST ast.Value) any {
		switch v := valueAST.(type) {
		case *ast.StringValue:
			return parseDecimalValue(v.Value)
		case *ast.IntValue:
			return parseDecimalValue(v.Value)
		case *ast.FloatValue:
			return parseDecimalValue(v.Value)
		}
		return nil
	},
})

func parseDecimalValue(value any) any {
	switch v := value.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil
		}
		return d
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		return decimal.NewFromFloat(v)
	case decimal.Decimal:
		return v
	}
	return nil
}

// dateType is a calendar day in YYYY-MM-DD form.
var dateType = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Date",
	Description: "Calendar date in YYYY-MM-DD form.",
	Serialize: func(value any) any {
		switch v := value.(type) {
		case time.Time:
			return v.Format(dateLayout)
		case *time.Time:
			if v == nil {
				return nil
			}
			return v.Format(dateLayout)
		}
		return nil
	},
	ParseValue: parseDateValue,
	ParseLiteral: func(valueAST ast.Value) any {
		if v, ok := valueAST.(*ast.StringValue); ok {
			return parseDateValue(v.Value)
		}
		return nil
	},
})

func parseDateValue(value any) any {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return nil
	}
	return t
}

// dateTimeType is an RFC 3339 timestamp.
var dateTimeType = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "DateTime",
	Description: "Timestamp in RFC 3339 form.",
	Serialize: func(value any) any {
		switch v := value.(type) {
		case time.Time:
			return v.UTC().Format(time.RFC3339Nano)
		case *time.Time:
			if v == nil {
				return nil
			}
			return v.UTC().Format(time.RFC3339Nano)
		}
		return nil
	},
	ParseValue: parseDateTimeValue,
	ParseLiteral: func(valueAST ast.Value) any {
		if v, ok := valueAST.(*ast.StringValue); ok {
			return parseDateTimeValue(v.Value)
		}
		return nil
	},
})

func parseDateTimeValue(value any) any {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return t.UTC()
}
