package gold

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCalendarRange(t *testing.T) {
	cal := BuildCalendar()

	// 2016-01-01 .. 2020-12-31 共 1827 天（2016 与 2020 为闰年）
	require.Len(t, cal, 1827)
	assert.Equal(t, "2016-01-01", cal[0].Data)
	assert.Equal(t, int32(20160101), cal[0].IDData)
	assert.Equal(t, "2020-12-31", cal[len(cal)-1].Data)
	assert.Equal(t, int32(20201231), cal[len(cal)-1].IDData)
}

func TestBuildCalendarColumns(t *testing.T) {
	cal := BuildCalendar()

	// 2016-01-01 是周五
	first := cal[0]
	assert.Equal(t, int32(2016), first.Ano)
	assert.Equal(t, int32(1), first.Mes)
	assert.Equal(t, int32(1), first.Dia)
	assert.Equal(t, int32(1), first.Trimestre)
	assert.Equal(t, int32(4), first.DiaSemana)
	assert.Equal(t, "Friday", first.NomeDia)
	assert.Equal(t, int32(0), first.IsFimDeSemana)

	// 次日周六为周末
	second := cal[1]
	assert.Equal(t, int32(5), second.DiaSemana)
	assert.Equal(t, int32(1), second.IsFimDeSemana)
}

func TestBuildCalendarQuarters(t *testing.T) {
	byKey := make(map[int32]int32)
	for _, d := range BuildCalendar() {
		byKey[d.IDData] = d.Trimestre
	}

	assert.Equal(t, int32(1), byKey[20180315])
	assert.Equal(t, int32(2), byKey[20180401])
	assert.Equal(t, int32(3), byKey[20180930])
	assert.Equal(t, int32(4), byKey[20181001])
}

func TestDateKey(t *testing.T) {
	d := time.Date(2018, 7, 5, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, int32(20180705), DateKey(d))
}

func TestMondayIndexed(t *testing.T) {
	assert.Equal(t, int32(0), mondayIndexed(time.Monday))
	assert.Equal(t, int32(5), mondayIndexed(time.Saturday))
	assert.Equal(t, int32(6), mondayIndexed(time.Sunday))
}
