package notifications

import (
	"bytes"
	"fmt"
	"text/template"
)

// Шаблоны транзакционных писем. Выбор шаблона отмены зависит от того,
// была ли отмена "чистой" (за 6 и более часов до начала).

const confirmationSubject = "Запись подтверждена"

const confirmationBody = `Здравствуйте, {{.ClientName}}!

Ваша запись подтверждена.

Услуга: {{.ServiceName}}
Дата: {{.Date}}
Время: {{.Time}}

Если планы изменятся, пожалуйста, отмените запись заранее.
`

const cancellationCleanSubject = "Запись отменена"

const cancellationCleanBody = `Здравствуйте, {{.ClientName}}!

Ваша запись на {{.Date}} {{.Time}} отменена.

Будем рады видеть вас снова.
`

const cancellationLateSubject = "Запись отменена (поздняя отмена)"

const cancellationLateBody = `Здравствуйте, {{.ClientName}}!

Ваша запись на {{.Date}} {{.Time}} отменена менее чем за 6 часов до начала.

Пожалуйста, в следующий раз отменяйте запись заранее.
`

const reminderSubject = "Напоминание о записи"

const reminderBody = `Здравствуйте, {{.ClientName}}!

Напоминаем о вашей записи завтра.

Услуга: {{.ServiceName}}
Дата: {{.Date}}
Время: {{.Time}}

Ждем вас!
`

// templateData данные для подстановки в шаблон письма
type templateData struct {
	ClientName  string
	ServiceName string
	Date        string
	Time        string
}

var (
	confirmationTmpl      = template.Must(template.New("confirmation").Parse(confirmationBody))
	cancellationCleanTmpl = template.Must(template.New("cancellation_clean").Parse(cancellationCleanBody))
	cancellationLateTmpl  = template.Must(template.New("cancellation_late").Parse(cancellationLateBody))
	reminderTmpl          = template.Must(template.New("reminder").Parse(reminderBody))
)

func render(tmpl *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("notifications: render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
