package predict

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"odp/dpbatch/pkg/errorutil"
)

// 模型工件文件名（训练侧导出约定，读取方不做降级）
const (
	modelFile        = "logistic_model_v1.json"
	modelConfigFile  = "model_config.json"
	routeRiskFile    = "route_risk.json"
	categoryRiskFile = "category_risk.json"
)

// LogisticModel 逻辑回归模型（系数按特征名索引）
// 对外只暴露"给定特征向量返回正类概率"
type LogisticModel struct {
	Intercept    float64            `json:"intercept"`
	Coefficients map[string]float64 `json:"coefficients"`
}

// PredictProba 计算正类概率
// features 中缺失的系数特征按 0 参与，等价于训练侧的零填充
func (m *LogisticModel) PredictProba(features map[string]float64) float64 {
	z := m.Intercept
	for name, coef := range m.Coefficients {
		z += coef * features[name]
	}
	return 1.0 / (1.0 + math.Exp(-z))
}

// ModelConfig 模型配置（特征清单与判定阈值，原样消费）
type ModelConfig struct {
	Features      []string `json:"features"`
	BestThreshold float64  `json:"best_threshold"`
}

// Artifacts 评分所需的全部工件
type Artifacts struct {
	Model        *LogisticModel
	Config       *ModelConfig
	RouteRisk    map[string]float64
	CategoryRisk map[string]float64
}

// LoadArtifacts 从 dir 加载模型工件
// 任一工件缺失或不可解析即返回致命错误，评分阶段不可在缺少工件时降级运行
func LoadArtifacts(dir string) (*Artifacts, error) {
	a := &Artifacts{}

	if err := readJSON(filepath.Join(dir, modelFile), &a.Model); err != nil {
		return nil, errorutil.FatalWrap("failed to load model artifact", err)
	}
	if err := readJSON(filepath.Join(dir, modelConfigFile), &a.Config); err != nil {
		return nil, errorutil.FatalWrap("failed to load model config", err)
	}
	if err := readJSON(filepath.Join(dir, routeRiskFile), &a.RouteRisk); err != nil {
		return nil, errorutil.FatalWrap("failed to load route risk lookup", err)
	}
	if err := readJSON(filepath.Join(dir, categoryRiskFile), &a.CategoryRisk); err != nil {
		return nil, errorutil.FatalWrap("failed to load category risk lookup", err)
	}

	return a, nil
}

// readJSON 读取并解析单个 JSON 工件
func readJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
