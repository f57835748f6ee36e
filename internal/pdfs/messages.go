package pdfs

const (
	bannerMessageConstant                   = "🎓 AI Journal Club - File Management"
	checkingHeaderMessageConstant           = "📁 Checking PDF files..."
	presentStatusSymbolConstant             = "✅"
	absentStatusSymbolConstant              = "❌"
	statusLineTemplateConstant              = "%s Week %d: %s"
	summaryLineTemplateConstant             = "📊 Summary: %d/%d PDF files exist"
	listHeaderMessageConstant               = "📋 Expected PDF files:"
	listItemTemplateConstant                = "📄 %s - Week %d%s"
	listLabelSuffixTemplateConstant         = " (%s)"
	listDirectoryTemplateConstant           = "📁 Files should be placed in: %s"
	syncInstructionsHeaderMessageConstant   = "🔧 To sync your development environment:"
	syncInstructionsOpenAdminStepConstant   = "1. Open the admin page in your browser"
	syncInstructionsConsoleStepConstant     = "2. Use the following localStorage commands in browser console:"
	syncInstructionsRefreshStepConstant     = "3. Refresh the main page to see the changes"
	storageStatementTemplateConstant        = "localStorage.setItem('%s', '%s');"
	syncGuidanceManualMessageConstant       = "💡 For a static site, localStorage sync must be done manually in the browser."
	syncGuidanceCheckCommandMessageConstant = "Use the \"check\" command to see the localStorage commands needed."
	unknownCommandMessageConstant           = "❓ Unknown command. Available commands: check, list, sync"
	blankLineConstant                       = ""
)
