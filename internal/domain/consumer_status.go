package domain

// ConsumerStatus — снимок состояния потребителя для внешних наблюдателей (HTTP статус, логи).
type ConsumerStatus struct {
	State       string `json:"state"`
	Outcome     string `json:"outcome,omitempty"`
	Accumulated int    `json:"accumulated"`
	Threshold   int    `json:"threshold"`
	Flushed     int    `json:"flushed"`
}
