package notify

func AccountCreated(to string) Message {
	return Message{
		To:      to,
		Subject: "Jiffy Account Created",
		Body:    "Your account has been created successfully. Sign in with " + to + ".",
	}
}

func AccountUpdated(to string) Message {
	return Message{To: to, Subject: "Jiffy Account Updated", Body: "Your account has been updated successfully."}
}

func AccountDeleted(to string) Message {
	return Message{To: to, Subject: "Jiffy Account Deleted", Body: "Your account has been deleted successfully."}
}

func PasswordReset(to string) Message {
	return Message{
		To:      to,
		Subject: "Jiffy password reset",
		Body:    "Your account password has been reset. If you did not request this, contact support.",
	}
}
