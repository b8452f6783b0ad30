package service

import (
	"fmt"

	"sayyara-vehicle-api/internal/model"
)

func yearOutOfRangeMessage(modelDisplay string, year, minYear, maxYear int) *model.LocalizedString {
	return &model.LocalizedString{
		EN: fmt.Sprintf("%s was not manufactured in %d – please select a year between %d and %d.",
			modelDisplay, year, minYear, maxYear),
		AR: fmt.Sprintf("%s لم تصنع في سنة %d - الرجاء اختيار سنة بين %d و %d.",
			modelDisplay, year, minYear, maxYear),
	}
}

func modelAsBrandMessage(modelDisplay, brandEN, brandAR string) *model.LocalizedString {
	return &model.LocalizedString{
		EN: fmt.Sprintf("%q is a model made by %s – did you mean brand %s?",
			modelDisplay, brandEN, brandEN),
		AR: fmt.Sprintf("\"%s\" هو موديل من %s - هل تقصد الشركة %s؟",
			modelDisplay, brandAR, brandAR),
	}
}

func genericBoundsAdvisory() *model.LocalizedString {
	return &model.LocalizedString{
		EN: "The year was accepted using generic bounds; model-specific production data was unavailable.",
		AR: "تم قبول السنة باستخدام حدود عامة لعدم توفر بيانات انتاج خاصة بهذا الموديل.",
	}
}
