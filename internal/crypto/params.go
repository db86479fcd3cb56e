package crypto

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"tonsecurity/internal/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// paramsValidator returns the shared validator. validator.Validate is safe
// for concurrent use once its rules are registered.
func paramsValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		v.RegisterStructValidation(hashParamsLanes, domain.HashParams{})
		validate = v
	})
	return validate
}

// hashParamsLanes enforces the 8 KiB per lane Argon2 floor.
func hashParamsLanes(sl validator.StructLevel) {
	p := sl.Current().Interface().(domain.HashParams)
	if p.Parallelism <= 0 || p.MemoryCost <= 0 {
		return
	}
	if need := MinMemoryPerLane * p.Parallelism; p.MemoryCost < need {
		sl.ReportError(p.MemoryCost, "memory_cost", "MemoryCost", "lanes", strconv.Itoa(need))
	}
}

// ValidateParams checks p against the Argon2id constraints. The returned
// error lists every violated field.
func ValidateParams(p domain.HashParams) error {
	err := paramsValidator().Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeField(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describeField(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be positive, got %v", fe.Field(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "lanes":
		return fmt.Sprintf("%s must be at least %s KiB for the requested parallelism, got %v", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
	}
}
