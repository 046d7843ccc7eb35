package email

// Minimal inline templates; the layout wraps every message body.
const layoutTemplate = `
{{define "layout"}}
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 560px; margin: 0 auto;">
  <h2 style="color: #8e2a4f;">{{.Title}}</h2>
  {{template "body" .}}
  <p style="color: #999; font-size: 12px;">You are receiving this email because you have an account on our matrimony service.</p>
</body>
</html>
{{end}}`

const verificationTemplate = `
{{define "body"}}
<p>Hi {{.Name}},</p>
<p>Welcome! Please confirm your email address to activate your account.</p>
<p><a href="{{.Link}}" style="background: #8e2a4f; color: #fff; padding: 10px 18px; text-decoration: none; border-radius: 4px;">Verify email</a></p>
<p>If the button does not work, open this link: {{.Link}}</p>
{{end}}`

const passwordResetTemplate = `
{{define "body"}}
<p>Hi {{.Name}},</p>
<p>We received a request to reset your password. The link below is valid for one hour.</p>
<p><a href="{{.Link}}" style="background: #8e2a4f; color: #fff; padding: 10px 18px; text-decoration: none; border-radius: 4px;">Reset password</a></p>
<p>If you did not request this, you can ignore this email.</p>
{{end}}`

const proposalReceivedTemplate = `
{{define "body"}}
<p>Hi {{.Name}},</p>
<p>{{.SenderName}} has sent you a proposal. Log in to view their profile and respond.</p>
<p><a href="{{.Link}}" style="background: #8e2a4f; color: #fff; padding: 10px 18px; text-decoration: none; border-radius: 4px;">View proposal</a></p>
{{end}}`

const profileReviewedTemplate = `
{{define "body"}}
<p>Hi {{.Name}},</p>
<p>Your profile has been {{.Outcome}}.</p>
{{if .Reason}}<p>Reviewer note: {{.Reason}}</p>{{end}}
<p><a href="{{.Link}}" style="background: #8e2a4f; color: #fff; padding: 10px 18px; text-decoration: none; border-radius: 4px;">Open your profile</a></p>
{{end}}`
