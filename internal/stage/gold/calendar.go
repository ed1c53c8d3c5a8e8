package gold

import (
	"strconv"
	"time"

	"odp/dpbatch/internal/model"
)

// 日历维度的固定生成区间（历史 + 近未来，不依赖外部输入）
const (
	calendarStart = "2016-01-01"
	calendarEnd   = "2020-12-31"
)

// BuildCalendar 确定性生成日历维度
// 代理键 id_data 为日期的纯函数（YYYYMMDD 整数），事实表可以在不查表的
// 情况下推导外键；dia_semana 以周一为 0，周末 = 周六/周日
func BuildCalendar() []model.DimCalendar {
	start, _ := time.Parse("2006-01-02", calendarStart)
	end, _ := time.Parse("2006-01-02", calendarEnd)

	days := int(end.Sub(start).Hours()/24) + 1
	out := make([]model.DimCalendar, 0, days)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		weekday := mondayIndexed(d.Weekday())

		var weekend int32
		if weekday >= 5 {
			weekend = 1
		}

		out = append(out, model.DimCalendar{
			Data:          d.Format("2006-01-02"),
			IDData:        DateKey(d),
			Ano:           int32(d.Year()),
			Mes:           int32(d.Month()),
			Dia:           int32(d.Day()),
			Trimestre:     (int32(d.Month())-1)/3 + 1,
			DiaSemana:     weekday,
			NomeDia:       d.Weekday().String(),
			IsFimDeSemana: weekend,
		})
	}

	return out
}

// DateKey 日期的代理键（YYYYMMDD 整数）
func DateKey(t time.Time) int32 {
	key, _ := strconv.Atoi(t.Format("20060102"))
	return int32(key)
}

// mondayIndexed 周几索引（周一 = 0）
func mondayIndexed(wd time.Weekday) int32 {
	return int32((int(wd) + 6) % 7)
}
