// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	htmltemplate "html/template"
	"net/url"
	"strings"
	texttemplate "text/template"

	"github.com/MKhiriev/intern-portal/models"
)

// ResetSubject is the subject line of the password-reset email.
const ResetSubject = "Recuperação de Senha - Programa de Estágio PGE-PA"

const resetHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background: #2563eb; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
      .content { background: #f8fafc; padding: 30px; border-radius: 0 0 8px 8px; }
      .button { display: inline-block; background: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 20px 0; }
      .footer { text-align: center; margin-top: 20px; font-size: 12px; color: #64748b; }
      .warning { background: #fef3c7; border-left: 4px solid #f59e0b; padding: 12px; margin: 20px 0; border-radius: 4px; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header"><h1>Programa de Estágio PGE-PA</h1></div>
      <div class="content">
        <p>Olá, {{.Name}}!</p>
        <p>Recebemos uma solicitação para redefinir a senha da sua conta no Programa de Estágio PGE-PA.</p>
        <p>Clique no botão abaixo para criar uma nova senha:</p>
        <p style="text-align: center;"><a href="{{.URL}}" class="button">Redefinir Senha</a></p>
        <p>Ou copie e cole o seguinte link no seu navegador:</p>
        <p style="word-break: break-all; color: #2563eb;">{{.URL}}</p>
        <div class="warning">
          <strong>Importante:</strong>
          <ul>
            <li>Este link é válido por {{.ValidHours}} horas</li>
            <li>Se você não solicitou esta recuperação, ignore este e-mail</li>
            <li>Não compartilhe este link com ninguém</li>
          </ul>
        </div>
        <p>Atenciosamente,<br>Equipe do Programa de Estágio PGE-PA</p>
      </div>
      <div class="footer"><p>Este é um e-mail automático, por favor não responda.</p></div>
    </div>
  </body>
</html>
`

const resetText = `Programa de Estágio PGE-PA - Recuperação de Senha

Olá, {{.Name}}!

Recebemos uma solicitação para redefinir a senha da sua conta.

Acesse o link abaixo para criar uma nova senha:
{{.URL}}

Este link é válido por {{.ValidHours}} horas.

Se você não solicitou esta recuperação, ignore este e-mail.

Atenciosamente,
Equipe do Programa de Estágio PGE-PA
`

var (
	resetHTMLTemplate = htmltemplate.Must(htmltemplate.New("reset.html").Parse(resetHTML))
	resetTextTemplate = texttemplate.Must(texttemplate.New("reset.txt").Parse(resetText))
)

type resetView struct {
	Name       string
	URL        string
	ValidHours int
}

// ResetURL builds the link a candidate follows to choose a new password.
func ResetURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/reset-password?token=" + url.QueryEscape(token)
}

// ComposeResetMessage renders the password-reset email. validHours is the
// validity window quoted to the reader.
func ComposeResetMessage(baseURL, email, token, displayName string, validHours int) (models.MailMessage, error) {
	view := resetView{Name: displayName, URL: ResetURL(baseURL, token), ValidHours: validHours}

	var html, text bytes.Buffer
	if err := resetHTMLTemplate.Execute(&html, view); err != nil {
		return models.MailMessage{}, err
	}
	if err := resetTextTemplate.Execute(&text, view); err != nil {
		return models.MailMessage{}, err
	}

	return models.MailMessage{
		To:          email,
		Subject:     ResetSubject,
		HTML:        html.String(),
		Text:        text.String(),
		ResetURL:    view.URL,
		DisplayName: displayName,
	}, nil
}
