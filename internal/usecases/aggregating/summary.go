package aggregating

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-coach-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Summarize calcula os totais do painel. As somas não dependem da ordem;
// apenas Latest assume que o índice 0 é o registro mais recente.
func Summarize(entries []*domain.Entry) domain.EntrySummary {
	summary := domain.EntrySummary{}

	accessories := decimal.Zero
	mrc := decimal.Zero

	for _, entry := range entries {
		if entry == nil {
			continue
		}

		summary.EntryCount++
		summary.TotalVoiceLines += entry.VoiceLines
		summary.TotalBTS += entry.BTS
		summary.TotalIoT += entry.IoT
		summary.TotalHSI += entry.HSI
		summary.TotalProtection += entry.Protection
		summary.TotalLines += entry.Lines()

		accessories = accessories.Add(entry.Accessories.Decimal)
		mrc = mrc.Add(entry.MRC.Decimal)
	}

	summary.TotalAccessories = accessories.StringFixed(2)
	summary.ProtectionPercent = ProtectionPercent(summary.TotalProtection, summary.TotalLines)
	summary.AverageMRC = averageMRC(mrc, summary.EntryCount)

	if len(entries) > 0 {
		summary.Latest = entries[0]
	}

	return summary
}

// ProtectionPercent devolve proteção sobre linhas com uma casa decimal.
// Sem linhas o resultado é "0.0%".
func ProtectionPercent(protection, lines int) string {
	if lines == 0 {
		return "0.0%"
	}

	percent := decimal.NewFromInt(int64(protection)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(lines)))

	return percent.StringFixed(1) + "%"
}

func averageMRC(total decimal.Decimal, count int) string {
	if count == 0 {
		return "0.00"
	}

	return total.Div(decimal.NewFromInt(int64(count))).StringFixed(2)
}
