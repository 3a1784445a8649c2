package validation

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

const factoryName = "ValidationFactory"

// Parameter bag keys read by the Factory in addition to the Param* keys
const (
	KeyType      = "type"
	KeyValue     = "value"
	KeyFieldName = "fieldName"
)

// Factory drives the chain from an untyped parameter bag such as decoded query
// parameters or a JSON object. It only checks that the keys required by the selected
// type are present; all validation is done by the chain.
type Factory struct {
	chain    *Chain
	validate *validator.Validate
}

func NewFactory(chain *Chain) *Factory {
	return &Factory{
		chain:    chain,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Create dispatches params to the chain method selected by params["type"].
// Unknown types fail instead of falling back to another validation.
func (f *Factory) Create(params map[string]any) Result {
	if params == nil {
		return Failure(factoryName, "", "parameters are required")
	}

	if missing := f.missing(params, map[string]any{KeyType: "required"}); len(missing) > 0 {
		return f.missingFailure(missing)
	}

	rawType, ok := params[KeyType].(string)
	if !ok {
		return Failure(factoryName, KeyType, fmt.Sprintf("parameter '%s' must be a string", KeyType))
	}
	kind, ok := ParseKind(rawType)
	if !ok {
		return Failure(factoryName, KeyType, fmt.Sprintf("unsupported validation type '%s'", rawType))
	}

	rules := map[string]any{}
	if !isPageableKind(kind) {
		rules[KeyFieldName] = "required"
	}

	missing := f.missing(params, rules)
	if !isPageableKind(kind) {
		if _, ok := params[KeyValue]; !ok {
			missing = append(missing, KeyValue)
		}
	}
	if kind == KindNumberRange {
		for _, key := range []string{ParamMin, ParamMax} {
			if params[key] == nil {
				missing = append(missing, key)
			}
		}
	}
	if len(missing) > 0 {
		return f.missingFailure(missing)
	}

	fieldName := pageableField
	if raw, present := params[KeyFieldName]; present && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return Failure(factoryName, KeyFieldName, fmt.Sprintf("parameter '%s' must be a string", KeyFieldName))
		}
		fieldName = s
	}

	return f.dispatch(kind, fieldName, params)
}

func (f *Factory) dispatch(kind Kind, fieldName string, params map[string]any) Result {
	value := params[KeyValue]

	switch kind {
	case KindStringNotEmpty:
		return f.chain.ValidateStringNotEmpty(value, fieldName)
	case KindStringOptional:
		return f.chain.ValidateStringOptional(value, fieldName)
	case KindNumberPositive:
		return f.chain.ValidatePositiveNumber(value, fieldName)
	case KindNumberRange:
		return f.chain.Validate(NewRequest(KindNumberRange, value, fieldName, map[string]any{
			ParamMin: params[ParamMin],
			ParamMax: params[ParamMax],
		}))
	case KindPageable, KindPageableLenient:
		return f.chain.Validate(NewRequest(kind, nil, fieldName, pageableParams(
			params[ParamPage], params[ParamSize], params[ParamSortBy], params[ParamSortDirection],
		)))
	case KindSortField:
		return f.chain.ValidateSortField(value, fieldName)
	case KindSortDirection:
		return f.chain.ValidateSortDirection(value, fieldName)
	default:
		return Failure(factoryName, fieldName, fmt.Sprintf("unsupported validation type '%s'", kind))
	}
}

// missing returns the keys of rules that failed, sorted for stable messages
func (f *Factory) missing(params map[string]any, rules map[string]any) []string {
	errs := f.validate.ValidateMap(params, rules)

	keys := make([]string, 0, len(errs))
	for key := range errs {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func (f *Factory) missingFailure(keys []string) Result {
	errs := make([]string, 0, len(keys))
	for _, key := range keys {
		errs = append(errs, fmt.Sprintf("parameter '%s' is required", key))
	}
	return Failure(factoryName, keys[0], errs...)
}

func isPageableKind(k Kind) bool {
	return k == KindPageable || k == KindPageableLenient
}

// SupportedTypes lists the type names Create accepts
func SupportedTypes() []string {
	out := make([]string, 0, len(kindNames))
	for _, k := range Kinds() {
		out = append(out, k.String())
	}
	return out
}
