package loader

import "github.com/huangsam/rankviz/schema"

// The wire types mirror the experiment results file. Field names follow the
// producer's camelCase keys for both JSON and YAML.

type wireDataset struct {
	MetricConfigs []wireMetric  `json:"metricConfigs" yaml:"metricConfigs" validate:"required,dive"`
	Ranking       []wireRanking `json:"ranking" yaml:"ranking" validate:"required,dive"`
}

type wireMetric struct {
	MetricName string `json:"metricName" yaml:"metricName" validate:"required"`
	Order      int    `json:"order" yaml:"order"`
	Unit       string `json:"unit" yaml:"unit"`
	Direction  string `json:"direction" yaml:"direction"`
}

type wireRanking struct {
	Position        int           `json:"position" yaml:"position" validate:"min=1"`
	ConfigurationID string        `json:"configurationId" yaml:"configurationId"`
	SystemResults   []wireResult  `json:"systemResults" yaml:"systemResults" validate:"dive"`
	SystemConfig    []wireService `json:"systemConfig" yaml:"systemConfig"`
}

type wireResult struct {
	MetricName string   `json:"metricName" yaml:"metricName" validate:"required"`
	Value      *float64 `json:"value" yaml:"value"` // nil means not measured
	Unit       string   `json:"unit" yaml:"unit"`
}

type wireService struct {
	ServiceName  string      `json:"serviceName" yaml:"serviceName"`
	ClassConfigs []wireClass `json:"classConfigs" yaml:"classConfigs"`
}

type wireClass struct {
	ClassName  string          `json:"className" yaml:"className"`
	Behaviours []wireBehaviour `json:"behaviours" yaml:"behaviours"`
}

type wireBehaviour struct {
	MethodName  string `json:"methodName" yaml:"methodName"`
	BehaviourID string `json:"behaviourId" yaml:"behaviourId"`
}

// toDataset converts validated wire data. Records keep file order.
func (w *wireDataset) toDataset() *schema.Dataset {
	ds := &schema.Dataset{
		Metrics: make([]schema.MetricDefinition, 0, len(w.MetricConfigs)),
		Configs: make([]schema.ConfigurationRecord, 0, len(w.Ranking)),
	}
	for _, m := range w.MetricConfigs {
		ds.Metrics = append(ds.Metrics, schema.MetricDefinition{
			Name:      m.MetricName,
			Order:     m.Order,
			Unit:      m.Unit,
			Direction: schema.ParseDirection(m.Direction),
		})
	}
	for _, r := range w.Ranking {
		ds.Configs = append(ds.Configs, r.toRecord())
	}
	return ds
}

func (r *wireRanking) toRecord() schema.ConfigurationRecord {
	rec := schema.ConfigurationRecord{
		Rank:         r.Position,
		ConfigID:     r.ConfigurationID,
		MetricValues: make(map[string]float64, len(r.SystemResults)),
		Units:        make(map[string]string),
	}
	for _, res := range r.SystemResults {
		// Later duplicates win, including a later null.
		if res.Value == nil {
			delete(rec.MetricValues, res.MetricName)
		} else {
			rec.MetricValues[res.MetricName] = *res.Value
		}
		if res.Unit != "" {
			rec.Units[res.MetricName] = res.Unit
		}
	}
	for _, s := range r.SystemConfig {
		svc := schema.ServiceConfig{ServiceName: s.ServiceName}
		for _, c := range s.ClassConfigs {
			cls := schema.ClassConfig{ClassName: c.ClassName}
			for _, b := range c.Behaviours {
				cls.Behaviours = append(cls.Behaviours, schema.Behaviour{MethodName: b.MethodName, BehaviourID: b.BehaviourID})
			}
			svc.Classes = append(svc.Classes, cls)
		}
		rec.Services = append(rec.Services, svc)
	}
	return rec
}
