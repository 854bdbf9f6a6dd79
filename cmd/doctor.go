package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/resumeai-labs/resumeai-cli/common/dependency"
	"github.com/resumeai-labs/resumeai-cli/tea/style"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Checks that the CLI tools used for deployment are installed",
	Long: `Checks that the CLI tools used for deployment are installed.

Not every target needs every tool:
- Git: Streamlit Cloud, Hugging Face Spaces, Heroku
- Docker (with a running daemon): Local Docker
- gcloud: Google Cloud Run
- Heroku CLI: Heroku`,
	RunE: func(_ *cobra.Command, _ []string) error {
		p := tea.NewProgram(NewDoctorModel())
		_, err := p.Run()
		return err
	},
}

//////////////////////
// Bubble Tea Model //
//////////////////////

type DoctorModel struct {
	ListOutput string
	HelpOutput string
}

func NewDoctorModel() DoctorModel {
	return DoctorModel{}
}

// Init checks each deployment dependency and reports its status
func (m DoctorModel) Init() tea.Cmd {
	var listOutput string
	var helpOutput string

	for _, dep := range dependency.DeployDependencies {
		if err := dep.Check(); err != nil {
			listOutput += style.CrossIcon.Render() + " " + dep.Name + "\n"
			helpOutput += dep.Help + "\n\n"
		} else {
			listOutput += style.TickIcon.Render() + " " + dep.Name + "\n"
		}
	}
	return SetOutputCmd(listOutput, helpOutput)
}

// Update handles incoming events and updates the model accordingly
func (m DoctorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type { //nolint:gocritic,exhaustive // only ctrl+c is handled
		case tea.KeyCtrlC:
			return m, tea.Quit
		}

	case SetOutputMsg:
		m.ListOutput = msg.ListOutput
		m.HelpOutput = msg.HelpOutput
		return m, tea.Quit
	}
	return m, nil
}

// View renders the model to the screen
func (m DoctorModel) View() string {
	output := style.Container.Render("--- ResumeAI CLI Doctor ---") + "\n\n"
	output += "Checking deployment tooling...\n"
	output += m.ListOutput + "\n"
	output += m.HelpOutput
	return output
}

/////////////////////////
// Bubble Tea Commands //
/////////////////////////

type SetOutputMsg struct {
	ListOutput string
	HelpOutput string
}

// SetOutputCmd sets the output of the doctor
func SetOutputCmd(listOutput string, helpOutput string) tea.Cmd {
	return func() tea.Msg {
		return SetOutputMsg{
			ListOutput: listOutput,
			HelpOutput: helpOutput,
		}
	}
}
