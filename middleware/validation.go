package middleware

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// 巴西联邦单位两位州码
var brazilStates = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {},
	"ES": {}, "GO": {}, "MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {},
	"PB": {}, "PR": {}, "PE": {}, "PI": {}, "RJ": {}, "RN": {}, "RS": {},
	"RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

// RegisterValidators 注册自定义校验规则，启动时调用一次
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// uf 校验巴西州码，大小写不敏感
		_ = v.RegisterValidation("uf", func(fl validator.FieldLevel) bool {
			_, ok := brazilStates[strings.ToUpper(fl.Field().String())]
			return ok
		})
	}
}
