package mailer

// Message транзакционное письмо
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// sendRequest тело запроса к почтовому API
type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// sendResponse ответ почтового API
type sendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
