package stage

import (
	"context"
)

// 阶段名常量（编排器以独立进程按固定顺序调度）
const (
	NameBronze  = "bronze"
	NameSilver  = "silver"
	NameGold    = "gold"
	NamePredict = "predict"
)

// Stage 阶段接口
// Run 返回每张输出表的处理结果；error 仅用于阶段级致命失败
// （如模型工件缺失），单表失败通过 TableResult 上报并继续
type Stage interface {
	Name() string
	Run(ctx context.Context) ([]TableResult, error)
}

// TableResult 单表处理结果（§成功/跳过原因的类型化返回，测试与调用方
// 依据该值断言结果，而非日志文本）
type TableResult struct {
	Table string
	Rows  int
	Err   error
}

// OK 创建成功结果
func OK(table string, rows int) TableResult {
	return TableResult{Table: table, Rows: rows}
}

// Fail 创建失败结果（该表被跳过）
func Fail(table string, err error) TableResult {
	return TableResult{Table: table, Err: err}
}

// Succeeded 判断是否成功
func (r TableResult) Succeeded() bool {
	return r.Err == nil
}

// CountFailed 统计失败表数
func CountFailed(results []TableResult) int {
	n := 0
	for _, r := range results {
		if !r.Succeeded() {
			n++
		}
	}
	return n
}
