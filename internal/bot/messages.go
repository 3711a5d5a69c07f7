package bot

import (
	"errors"
	"fmt"

	"github.com/OtabekMamajonov/choyxona-bot/internal/intake"
	"github.com/OtabekMamajonov/choyxona-bot/internal/pricing"
)

const (
	greeting        = "Assalomu alaykum! Web App orqali buyurtmalarni qabul qilish uchun tugmani bosing."
	orderButtonText = "🧾 Buyurtma yaratish"

	msgBadPayload    = "Buyurtma ma'lumotida xatolik. Iltimos, qaytadan urinib ko'ring."
	msgEmptyOrder    = "Buyurtmada kamida bitta taom bo'lishi kerak."
	msgBadQuantity   = "Taom miqdori 0 dan katta bo'lishi kerak."
	msgUnknownItem   = "Buyurtmada menyuda yo'q taom bor."
	msgBadDiscount   = "Chegirma qiymati noto'g'ri: manfiy bo'lmasligi va foiz 100 dan oshmasligi kerak."
	msgBadPayment    = "To'lov summasi manfiy bo'lishi mumkin emas."
	msgNotSaved      = "Buyurtma saqlanmadi. Iltimos, qaytadan urinib ko'ring."
	msgBadDate       = "Sana formati noto'g'ri. Namuna: /summary 2025-06-01"
	msgSummaryFailed = "Hisobotni tayyorlashda xatolik yuz berdi."
)

// userMessage maps a submission failure to the Uzbek reply the operator
// sees. Storage and unexpected failures stay generic; in both cases the
// order was not recorded.
func userMessage(err error) string {
	var le *pricing.LineError
	hasLine := errors.As(err, &le)

	switch {
	case errors.Is(err, intake.ErrInvalidPayload):
		return msgBadPayload
	case errors.Is(err, pricing.ErrEmptyOrder):
		return msgEmptyOrder
	case errors.Is(err, pricing.ErrUnknownItem):
		if hasLine {
			return fmt.Sprintf("'%s' taomi menyuda mavjud emas.", le.MenuID)
		}
		return msgUnknownItem
	case errors.Is(err, pricing.ErrInvalidQuantity):
		if hasLine {
			return fmt.Sprintf("'%s' uchun miqdor 0 dan katta bo'lishi kerak.", le.MenuID)
		}
		return msgBadQuantity
	case errors.Is(err, pricing.ErrInvalidDiscount):
		return msgBadDiscount
	case errors.Is(err, pricing.ErrInvalidPayment):
		return msgBadPayment
	default:
		return msgNotSaved
	}
}
