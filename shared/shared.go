package shared

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"grandplaza/shared/cache"
	"grandplaza/shared/constant"
	"grandplaza/shared/dto"
	"grandplaza/shared/failure"
	"grandplaza/shared/timezone"

	"github.com/rs/zerolog/log"
)

// ConvertStringToInt returns fallback when value is empty or not a positive integer.
func ConvertStringToInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}

	intValue, err := strconv.Atoi(value)
	if err != nil || intValue <= 0 {
		log.Warn().Str("value", value).Msg("failed to convert string to int, using fallback")

		return fallback
	}

	return intValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero db-tagged fields of a struct into an update map.
// Pointer fields are dereferenced so an explicit zero can still be written.
func TransformFields(data any, operator string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = operator

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterFromSearch wraps a search filter into a group the repositories accept.
func FilterFromSearch(search dto.SearchFilter) dto.FilterGroup {
	group := search.Group()
	if group == nil {
		return dto.FilterGroup{}
	}

	return *group
}

// Operator returns the back-office user recorded on writes.
func Operator(ctx context.Context) string {
	if operator, ok := ctx.Value(constant.ContextKeyOperator).(string); ok && operator != "" {
		return operator
	}

	return constant.DefaultOperator
}

func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery keys a list result by its paging and a digest of its filter.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	// encoding/json sorts map keys, so equal filters hash equally
	encodedArgs, err := json.Marshal(args)
	if err != nil {
		encodedArgs = fmt.Appendf(nil, "%v", args)
	}

	sum := sha1.Sum(append([]byte(where), encodedArgs...)) //nolint:gosec

	return BuildCacheKey(prefix,
		strconv.Itoa(params.Page),
		strconv.Itoa(params.Limit),
		params.SortBy,
		params.SortDir,
		hex.EncodeToString(sum[:8]),
	)
}

// InvalidateCaches drops every key under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// CheckStay validates the stay that results from replacing checkIn and checkOut (YYYY-MM-DD, empty keeps
// the current value). The check-out day must come after the check-in day.
func CheckStay(currentIn, currentOut time.Time, checkIn, checkOut string) error {
	if checkIn == constant.Empty && checkOut == constant.Empty {
		return nil
	}

	in, out := currentIn, currentOut

	if checkIn != constant.Empty {
		parsed, err := timezone.Parse(constant.DayFormat, checkIn)
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		in = parsed
	}

	if checkOut != constant.Empty {
		parsed, err := timezone.Parse(constant.DayFormat, checkOut)
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		out = parsed
	}

	if !out.After(in) {
		return failure.BadRequestFromString("check-out must be after check-in") // nolint:wrapcheck
	}

	return nil
}
