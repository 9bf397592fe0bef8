package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

const (
	TemplatePasswordChanged = "password_changed"
	TemplatePasswordReset   = "password_reset"
)

var builtinTemplates = map[string]string{
	TemplatePasswordChanged: `<p>Hello {{.Name}},</p>
<p>The password of your BanArts account was changed on {{.When}}.</p>
<p>If this was not you, reset it right away.</p>`,
	TemplatePasswordReset: `<p>Hello {{.Name}},</p>
<p>Your BanArts password was reset with your security question on {{.When}}.</p>
<p>If this was not you, contact an administrator.</p>`,
}

// TemplateData is the input of a template.
type TemplateData map[string]interface{}

// TemplateManager keeps parsed HTML templates by name.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager loaded with the account templates.
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	for name, body := range builtinTemplates {
		if err := tm.AddTemplate(name, body); err != nil {
			panic(err)
		}
	}
	return tm
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// AddTemplate parses templateStr and stores it under name, replacing any
// previous template of that name.
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}
